package game

import (
	"math/rand"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/spf13/viper"
)

// Shan 牌山。后14张为王牌, 岭上牌从王牌前端补充, 宝牌指示牌固定5组。
type Shan struct {
	rule       *mahjong.Rule
	pai        []string
	last       int // 自摸侧游标
	lingshang  int // 岭上侧游标(0..3)
	baopai     []string
	fubaopai   []string
	weiKaigang bool
	closed     bool
}

// NewShan 洗牌并创建牌山
func NewShan(rule *mahjong.Rule, rng *rand.Rand) *Shan {
	pai := buildWall(rule)
	rng.Shuffle(len(pai), func(i, j int) {
		pai[i], pai[j] = pai[j], pai[i]
	})
	return newShan(rule, pai)
}

// NewShanWithWall 以指定排列创建牌山, 复盘与测试用
func NewShanWithWall(rule *mahjong.Rule, pai []string) *Shan {
	wall := append([]string(nil), pai...)
	return newShan(rule, wall)
}

// LoadWallPreset 从 yaml 读取配牌预设, 格式为 wall: [136张牌...],
// 结果可经 Game.SetWalls 使用
func LoadWallPreset(path string) ([]string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	wall := v.GetStringSlice("wall")
	if len(wall) != 136 {
		return nil, mahjong.ErrParse
	}
	for _, p := range wall {
		if _, ok := mahjong.ValidPai(p); !ok {
			return nil, mahjong.ErrParse
		}
	}
	return wall, nil
}

func newShan(rule *mahjong.Rule, pai []string) *Shan {
	return &Shan{
		rule:     rule,
		pai:      pai,
		last:     len(pai) - 1,
		baopai:   []string{pai[4]},
		fubaopai: []string{pai[5]},
	}
}

func buildWall(rule *mahjong.Rule) []string {
	var pai []string
	for _, s := range []byte{'m', 'p', 's'} {
		for n := 1; n <= 9; n++ {
			for i := 0; i < 4; i++ {
				d := byte('0' + n)
				if n == 5 && i < rule.Hongpai[string(s)] {
					d = '0'
				}
				pai = append(pai, string([]byte{s, d}))
			}
		}
	}
	for n := 1; n <= 7; n++ {
		for i := 0; i < 4; i++ {
			pai = append(pai, "z"+string(byte('0'+n)))
		}
	}
	return pai
}

// Paishu 余牌数
func (s *Shan) Paishu() int {
	return s.last - s.lingshang - 13
}

// Zimo 自摸一张
func (s *Shan) Zimo() (string, error) {
	if s.closed || s.Paishu() == 0 || s.weiKaigang {
		return "", mahjong.ErrUnderflow
	}
	p := s.pai[s.last]
	s.last--
	return p, nil
}

// Gangzimo 摸岭上牌, 若开杠宝牌有效则等待翻牌
func (s *Shan) Gangzimo() (string, error) {
	if s.closed || s.Paishu() == 0 || s.weiKaigang || s.lingshang == 4 {
		return "", mahjong.ErrUnderflow
	}
	p := s.pai[s.lingshang]
	s.lingshang++
	s.weiKaigang = s.rule.Gangbaopai
	return p, nil
}

// Kaigang 翻开新的宝牌指示牌
func (s *Shan) Kaigang() (string, error) {
	if s.closed || !s.weiKaigang {
		return "", mahjong.ErrUnderflow
	}
	idx := 4 + len(s.baopai)*2
	s.baopai = append(s.baopai, s.pai[idx])
	s.fubaopai = append(s.fubaopai, s.pai[idx+1])
	s.weiKaigang = false
	return s.pai[idx], nil
}

// Close 牌山封闭, 之后可以查看里宝牌
func (s *Shan) Close() *Shan {
	s.closed = true
	return s
}

// Baopai 已翻开的宝牌指示牌
func (s *Shan) Baopai() []string {
	return append([]string(nil), s.baopai...)
}

// Fubaopai 里宝牌指示牌, 牌山封闭前不可见
func (s *Shan) Fubaopai() []string {
	if !s.closed || !s.rule.Libaopai {
		return nil
	}
	n := 1
	if s.rule.Ganglibaopai {
		n = len(s.fubaopai)
	}
	return append([]string(nil), s.fubaopai[:n]...)
}
