package mahjong

import (
	"github.com/spf13/viper"
)

// Rule 竞赛规则。字段含义与默认值基于常见的东南战规则,
// 通过 yaml 配置覆盖。
type Rule struct {
	StartingPoints int      `mapstructure:"starting_points"`  // 配给原点
	RankPoints     []string `mapstructure:"rank_points"`      // 顺位点
	Lianfengpai2Fu bool     `mapstructure:"lianfengpai_2fu"`  // 连风雀头2符(默认4符)

	Hongpai     map[string]int `mapstructure:"hongpai"`      // 各色赤牌张数
	Kuitan      bool           `mapstructure:"kuitan"`       // 食断
	KuikaeLevel int            `mapstructure:"kuikae_level"` // 食替: 0=现物筋禁 1=现物禁 2=不禁

	Changshu         int  `mapstructure:"changshu"`           // 场数: 0=一局 1=东风 2=东南 4=一庄
	Tuzhongliuju     bool `mapstructure:"tuzhongliuju"`       // 途中流局
	LiujuManguan     bool `mapstructure:"liuju_manguan"`      // 流局满贯
	NotingXuanyan    bool `mapstructure:"noting_xuanyan"`     // 不听宣言
	NotingFa         bool `mapstructure:"noting_fa"`          // 不听罚符
	MaxSimultaneousHule int `mapstructure:"max_simultaneous_hule"` // 最大同时和了数
	LianzhuangFangshi   int `mapstructure:"lianzhuang_fangshi"`    // 连庄方式: 0=无 1=和了连庄 2=听牌连庄 3=轮庄
	TobiEnd          bool `mapstructure:"tobi_end"`           // 击飞终局
	AgariYame        bool `mapstructure:"agariyame"`          // 和了止め
	ExtensionFangshi int  `mapstructure:"extension_fangshi"`  // 延长战: 0=无 1=突然死 2=连庄优先 3=四庄战

	Yifa             bool `mapstructure:"yifa"`               // 一发
	Libaopai         bool `mapstructure:"libaopai"`           // 里宝牌
	Gangbaopai       bool `mapstructure:"gangbaopai"`         // 杠宝牌
	Ganglibaopai     bool `mapstructure:"ganglibaopai"`       // 杠里宝牌
	GangbaopaiDelayed bool `mapstructure:"gangbaopai_delayed"` // 明杠宝牌后乘
	LizhiWithoutZimo bool `mapstructure:"lizhi_without_zimo"` // 无摸牌番立直
	LizhiAngangLevel int  `mapstructure:"lizhi_angang_level"` // 立直后暗杠: 0=禁 1=牌姿不变 2=听牌不变

	DamanguanCompound bool `mapstructure:"damanguan_compound"` // 役满复合
	DoubleDamanguan   bool `mapstructure:"double_damanguan"`   // 双倍役满
	CountedDamanguan  bool `mapstructure:"counted_damanguan"`  // 累计役满
	DamanguanBao      bool `mapstructure:"damanguan_bao"`      // 役满包
	RoundUpManguan    bool `mapstructure:"roundup_manguan"`    // 切上满贯
}

// NewRule 返回默认规则
func NewRule() *Rule {
	return &Rule{
		StartingPoints: 25000,
		RankPoints:     []string{"20.0", "10.0", "-10.0", "-20.0"},
		Lianfengpai2Fu: false,

		Hongpai:     map[string]int{"m": 1, "p": 1, "s": 1},
		Kuitan:      true,
		KuikaeLevel: 0,

		Changshu:            2,
		Tuzhongliuju:        true,
		LiujuManguan:        true,
		NotingXuanyan:       false,
		NotingFa:            true,
		MaxSimultaneousHule: 2,
		LianzhuangFangshi:   2,
		TobiEnd:             true,
		AgariYame:           true,
		ExtensionFangshi:    1,

		Yifa:              true,
		Libaopai:          true,
		Gangbaopai:        true,
		Ganglibaopai:      true,
		GangbaopaiDelayed: true,
		LizhiWithoutZimo:  false,
		LizhiAngangLevel:  2,

		DamanguanCompound: true,
		DoubleDamanguan:   true,
		CountedDamanguan:  true,
		DamanguanBao:      true,
		RoundUpManguan:    false,
	}
}

// LoadRule 从 yaml 文件读取规则, 未配置的字段保持默认值
func LoadRule(path string) (*Rule, error) {
	rule := NewRule()
	if path == "" {
		return rule, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(rule); err != nil {
		return nil, err
	}
	return rule, nil
}
