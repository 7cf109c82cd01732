package mahjong

import "strings"

// 结合规则的合法手段判定。Shoupai 本身只知道牌理, 食替级别/海底限制/
// 立直条件等规则约束在这里收口。

// GetDapai 按食替级别列举可打的牌
func GetDapai(rule *Rule, shoupai *Shoupai) []string {
	if rule.KuikaeLevel == 0 {
		return shoupai.GetDapai(true)
	}
	if rule.KuikaeLevel == 1 && shoupai.zimo != "" && len(shoupai.zimo) > 2 {
		claimed := mianziClaimed(shoupai.zimo)
		deny := PaiFace(claimed)
		var dapai []string
		for _, p := range shoupai.GetDapai(false) {
			if PaiFace(p) != deny {
				dapai = append(dapai, p)
			}
		}
		return dapai
	}
	return shoupai.GetDapai(false)
}

// GetChiMianzi 列举可吃的面子, 海底牌不能鸣
func GetChiMianzi(rule *Rule, shoupai *Shoupai, p string, paishu int) ([]string, error) {
	mianzi, err := shoupai.GetChiMianzi(p, rule.KuikaeLevel == 0)
	if err != nil || mianzi == nil {
		return mianzi, err
	}
	if rule.KuikaeLevel == 1 && len(mianzi) > 0 {
		// 只禁现物: 吃后手中只剩与被鸣牌同面值的牌时不可吃
		face := PaiFace(p)
		n := int(face[1] - '0')
		concealed := shoupai.hidden
		for _, s := range Suits {
			for j := 1; j < len(shoupai.bingpai[s]); j++ {
				concealed += shoupai.bingpai[s][j]
			}
		}
		if shoupai.bingpai[face[0]][n] >= concealed-2 {
			mianzi = []string{}
		}
	}
	if paishu == 0 {
		return []string{}, nil
	}
	return mianzi, nil
}

// GetPengMianzi 列举可碰的面子, 海底牌不能鸣
func GetPengMianzi(rule *Rule, shoupai *Shoupai, p string, paishu int) ([]string, error) {
	mianzi, err := shoupai.GetPengMianzi(p)
	if err != nil || mianzi == nil {
		return mianzi, err
	}
	if paishu == 0 {
		return []string{}, nil
	}
	return mianzi, nil
}

// GetGangMianzi 列举可杠的面子。海底不能杠, 第5杠不存在,
// 立直后按许可级别限制暗杠。
func GetGangMianzi(rule *Rule, shoupai *Shoupai, p string, paishu, nGang int) ([]string, error) {
	mianzi, err := shoupai.GetGangMianzi(p)
	if err != nil || mianzi == nil || len(mianzi) == 0 {
		return mianzi, err
	}
	if shoupai.lizhi {
		switch rule.LizhiAngangLevel {
		case 0:
			return []string{}, nil
		case 1:
			// 牌姿变化的暗杠不可: 和了形分解数不得减少
			n1, n2 := 0, 0
			sp := shoupai.Clone()
			sp.Dapai(sp.zimo, false)
			for _, t := range Tingpai(sp) {
				n1 += len(HuleMianzi(sp, t+"+"))
			}
			sp = shoupai.Clone()
			sp.Gang(mianzi[0], false)
			for _, t := range Tingpai(sp) {
				n2 += len(HuleMianzi(sp, t+"+"))
			}
			if n1 > n2 {
				return []string{}, nil
			}
		default:
			// 待ち变化的暗杠不可
			sp := shoupai.Clone()
			sp.Dapai(sp.zimo, false)
			n1 := len(Tingpai(sp))
			sp = shoupai.Clone()
			sp.Gang(mianzi[0], false)
			if Xiangting(sp) > 0 {
				return []string{}, nil
			}
			if n1 > len(Tingpai(sp)) {
				return []string{}, nil
			}
		}
	}
	if paishu == 0 || nGang == 4 {
		return []string{}, nil
	}
	return mianzi, nil
}

// AllowLizhi 立直判定。p 为空时返回全部可宣立直的打牌, 否则判定该打牌。
func AllowLizhi(rule *Rule, shoupai *Shoupai, p string, paishu, defen int) ([]string, bool) {
	if shoupai.zimo == "" || shoupai.lizhi || !shoupai.Menqian() {
		return nil, false
	}
	if !rule.LizhiWithoutZimo && paishu < 4 {
		return nil, false
	}
	if rule.TobiEnd && defen < 1000 {
		return nil, false
	}
	if Xiangting(shoupai) > 0 {
		return nil, false
	}
	if p != "" {
		sp := shoupai.Clone()
		if sp.Dapai(strings.TrimSuffix(p, "*"), true) != nil {
			return nil, false
		}
		return nil, Xiangting(sp) == 0 && len(Tingpai(sp)) > 0
	}
	var dapai []string
	for _, q := range shoupai.GetDapai(true) {
		sp := shoupai.Clone()
		if sp.Dapai(q, false) != nil {
			continue
		}
		if Xiangting(sp) == 0 && len(Tingpai(sp)) > 0 {
			dapai = append(dapai, q)
		}
	}
	return dapai, len(dapai) > 0
}

// AllowHule 和了判定。p 为空表示自摸和。
// hupai 表示已有状况役(立直/一发/枪杠/岭上/海底), nengRong 为振听状态。
func AllowHule(rule *Rule, shoupai *Shoupai, p string, zhuangfeng, menfeng int, hupai, nengRong bool) bool {
	if p != "" && !nengRong {
		return false
	}
	sp := shoupai.Clone()
	if p != "" {
		if sp.Zimo(p[:2], false) != nil {
			return false
		}
	}
	if Xiangting(sp) != -1 {
		return false
	}
	if hupai {
		return true
	}
	param := &HuleParam{
		Rule:       rule,
		Zhuangfeng: zhuangfeng,
		Menfeng:    menfeng,
	}
	_, err := Hule(shoupai, p, param)
	return err == nil
}

// AllowPingju 九种九牌流局判定
func AllowPingju(rule *Rule, shoupai *Shoupai, diyizimo bool) bool {
	if !diyizimo || !rule.Tuzhongliuju {
		return false
	}
	if shoupai.zimo == "" || len(shoupai.zimo) > 2 {
		return false
	}
	kinds := 0
	for _, s := range Suits {
		bingpai := shoupai.bingpai[s]
		for n := 1; n < len(bingpai); n++ {
			if bingpai[n] == 0 {
				continue
			}
			if s == 'z' || n == 1 || n == 9 {
				kinds++
			}
		}
	}
	return kinds >= 9
}

// AllowNoDaopai 流局时不听宣言的判定: 听牌且打出过的牌不含待ち
func AllowNoDaopai(rule *Rule, shoupai *Shoupai, paishu int) bool {
	if paishu > 0 || shoupai.zimo != "" {
		return false
	}
	if !rule.NotingXuanyan {
		return false
	}
	return Xiangting(shoupai) == 0 && len(Tingpai(shoupai)) > 0
}
