package mahjong

import (
	"strings"
)

// 和了判定与算点。HuleMianzi 枚举全部和了形分解, Hule 对每个分解计算
// 符与翻数并取得点最高者。

// HupaiFlag 状况役标志
type HupaiFlag struct {
	Lizhi     int  // 0=无 1=立直 2=双立直
	Yifa      bool // 一发
	Qianggang bool // 抢杠
	Lingshang bool // 岭上开花
	Haidi     int  // 0=无 1=海底摸月 2=河底捞鱼
	Tianhu    int  // 0=无 1=天和 2=地和
}

// Jicun 场上的积存(供托)
type Jicun struct {
	Changbang int // 场棒(本场数)
	Lizhibang int // 立直棒
}

// HuleParam 和了时的状况参数
type HuleParam struct {
	Rule       *Rule
	Zhuangfeng int      // 场风 0-3
	Menfeng    int      // 门风 0-3, 0为庄家
	Hupai      HupaiFlag
	Baopai     []string // 宝牌指示牌
	Fubaopai   []string // 里宝牌指示牌, 未立直时为 nil
	Jicun      Jicun
}

// Hupai 成立的役
type Hupai struct {
	Name      string
	Fanshu    int    // 翻数, 役满时为0
	Damanguan int    // 役满倍数
	Baojia    string // 包家方位修饰, 无包为空
}

// HuleResult 和了结果
type HuleResult struct {
	Hupai     []Hupai
	Fu        int
	Fanshu    int
	Damanguan int
	Defen     int   // 和了打点(不含积存)
	Fenpei    []int // 各家收支, 含积存与包
}

// Hule 计算和了结果。rongpai 为空表示自摸和。无役时返回 ErrNotAWin。
func Hule(shoupai *Shoupai, rongpai string, param *HuleParam) (*HuleResult, error) {
	if param.Rule == nil {
		param.Rule = NewRule()
	}
	if rongpai != "" {
		d := PaiTag(rongpai)
		if d == 0 {
			return nil, ErrParse
		}
		if _, ok := ValidPai(rongpai); !ok {
			return nil, ErrParse
		}
		if shoupai.zimo != "" {
			return nil, ErrOverflow
		}
		rongpai = rongpai[:2] + string(d)
	} else {
		if shoupai.zimo == "" || len(shoupai.zimo) > 2 {
			return nil, ErrNotAWin
		}
	}

	preHupai := getPreHupai(param.Hupai)
	postHupai := getPostHupai(shoupai, rongpai, param.Baopai, param.Fubaopai)
	var max *HuleResult
	for _, mianzi := range HuleMianzi(shoupai, rongpai) {
		hudi := getHudi(mianzi, param.Zhuangfeng, param.Menfeng, param.Rule)
		hupai := getHupai(mianzi, hudi, preHupai, param.Hupai.Tianhu, param.Rule)
		if len(hupai) == 0 {
			continue
		}
		if hupai[0].Damanguan == 0 {
			hupai = append(append([]Hupai(nil), hupai...), postHupai...)
		}
		rv := getDefen(hudi.fu, hupai, rongpai, param)
		if max == nil || rv.Defen > max.Defen ||
			rv.Defen == max.Defen && (rv.Fanshu > max.Fanshu ||
				rv.Fanshu == max.Fanshu && rv.Fu > max.Fu) {
			max = rv
		}
	}
	if max == nil {
		return nil, ErrNotAWin
	}
	return max, nil
}

// HuleMianzi 枚举和了形分解。每个分解为面子串列表, 和了牌以
// "_!"(自摸)或 "+!"/"=!"/"-!"(荣和)标记。
func HuleMianzi(shoupai *Shoupai, rongpai string) [][]string {
	combined := shoupai.Clone()
	if rongpai != "" {
		if err := combined.Zimo(rongpai[:2], false); err != nil {
			return nil
		}
	}
	if combined.zimo == "" || len(combined.zimo) > 2 || combined.hidden > 0 {
		return nil
	}
	hulepai := rongpai
	if hulepai == "" {
		hulepai = combined.zimo + "_"
	}
	if hulepai[1] == '0' {
		hulepai = string(hulepai[0]) + "5" + hulepai[2:]
	}

	var all [][]string
	all = append(all, huleMianziYiban(combined, hulepai)...)
	all = append(all, huleMianziQidui(combined, hulepai)...)
	all = append(all, huleMianziGuoshi(combined, hulepai)...)
	all = append(all, huleMianziJiulian(combined, hulepai)...)
	return all
}

// 一般形: 依次取雀头, 剩余部分完全分解为顺子/刻子
func huleMianziYiban(sp *Shoupai, hulepai string) [][]string {
	var result [][]string
	for _, s := range Suits {
		bingpai := sp.bingpai[s]
		for n := 1; n < len(bingpai); n++ {
			if bingpai[n] < 2 {
				continue
			}
			bingpai[n] -= 2
			jiangpai := string(s) + string(byte('0'+n)) + string(byte('0'+n))
			for _, mm := range mianziAll(sp) {
				full := append([]string{jiangpai}, mm...)
				if len(full) != 5 {
					continue
				}
				result = append(result, addHulepai(full, hulepai)...)
			}
			bingpai[n] += 2
		}
	}
	return result
}

// mianziAll 全花色的暗牌完全分解(不含雀头), 末尾附副露
func mianziAll(sp *Shoupai) [][]string {
	result := [][]string{nil}
	for _, s := range []byte{'m', 'p', 's'} {
		var next [][]string
		for _, mm := range result {
			for _, nn := range suitMianzi(s, sp.bingpai[s], 1) {
				next = append(next, append(append([]string(nil), mm...), nn...))
			}
		}
		result = next
	}
	var zipai []string
	for n := 1; n <= 7; n++ {
		c := sp.bingpai['z'][n]
		if c == 0 {
			continue
		}
		if c != 3 {
			return nil
		}
		d := byte('0' + n)
		zipai = append(zipai, "z"+string([]byte{d, d, d}))
	}
	var out [][]string
	for _, mm := range result {
		full := append(append([]string(nil), mm...), zipai...)
		full = append(full, sp.fulou...)
		out = append(out, full)
	}
	return out
}

// suitMianzi 单花色的全部完全分解
func suitMianzi(s byte, bingpai []int, n int) [][]string {
	if n > 9 {
		return [][]string{nil}
	}
	if bingpai[n] == 0 {
		return suitMianzi(s, bingpai, n+1)
	}
	var result [][]string
	if n <= 7 && bingpai[n] > 0 && bingpai[n+1] > 0 && bingpai[n+2] > 0 {
		bingpai[n]--
		bingpai[n+1]--
		bingpai[n+2]--
		for _, mm := range suitMianzi(s, bingpai, n) {
			m := string(s) + string(byte('0'+n)) + string(byte('0'+n+1)) + string(byte('0'+n+2))
			result = append(result, append([]string{m}, mm...))
		}
		bingpai[n]++
		bingpai[n+1]++
		bingpai[n+2]++
	}
	if bingpai[n] == 3 {
		bingpai[n] -= 3
		for _, mm := range suitMianzi(s, bingpai, n+1) {
			d := byte('0' + n)
			m := string(s) + string([]byte{d, d, d})
			result = append(result, append([]string{m}, mm...))
		}
		bingpai[n] += 3
	}
	return result
}

// addHulepai 为每个可含和了牌的位置生成一个标记变体
func addHulepai(mianzi []string, hulepai string) [][]string {
	s, n, d := hulepai[0], hulepai[1], hulepai[2:]
	var result [][]string
	for i, m := range mianzi {
		if strings.ContainsAny(m, "+=-") {
			continue // 副露不含和了牌
		}
		if i > 0 && m == mianzi[i-1] {
			continue // 同形去重
		}
		if m[0] != s {
			continue
		}
		j := strings.LastIndexByte(m, n)
		if j <= 0 {
			continue
		}
		marked := m[:j+1] + d + "!" + m[j+1:]
		next := append([]string(nil), mianzi...)
		next[i] = marked
		result = append(result, next)
	}
	return result
}

// 七对形
func huleMianziQidui(sp *Shoupai, hulepai string) [][]string {
	if len(sp.fulou) > 0 {
		return nil
	}
	var mianzi []string
	for _, s := range Suits {
		bingpai := sp.bingpai[s]
		for n := 1; n < len(bingpai); n++ {
			c := bingpai[n]
			if c == 0 {
				continue
			}
			if c != 2 {
				return nil
			}
			d := byte('0' + n)
			m := string(s) + string([]byte{d, d})
			if string(s)+string(d) == hulepai[:2] {
				m += hulepai[2:] + "!"
			}
			mianzi = append(mianzi, m)
		}
	}
	if len(mianzi) != 7 {
		return nil
	}
	return [][]string{mianzi}
}

// 国士形: 13元素, 雀头在首位
func huleMianziGuoshi(sp *Shoupai, hulepai string) [][]string {
	if len(sp.fulou) > 0 {
		return nil
	}
	var mianzi []string
	pair := ""
	for _, s := range Suits {
		bingpai := sp.bingpai[s]
		for n := 1; n < len(bingpai); n++ {
			c := bingpai[n]
			if c == 0 {
				continue
			}
			d := byte('0' + n)
			face := string(s) + string(d)
			if s != 'z' && n != 1 && n != 9 {
				return nil
			}
			switch c {
			case 1:
				m := face
				if face == hulepai[:2] && pair != "" {
					m += hulepai[2:] + "!"
				}
				mianzi = append(mianzi, m)
			case 2:
				if pair != "" {
					return nil
				}
				pair = face + string(d)
				if face == hulepai[:2] {
					pair += hulepai[2:] + "!"
				}
			default:
				return nil
			}
		}
	}
	if pair == "" || len(mianzi) != 12 {
		return nil
	}
	// 单张与和了牌同面且无标记时补标记
	if !strings.Contains(pair, "!") {
		marked := false
		for i, m := range mianzi {
			if m == hulepai[:2] && !marked {
				mianzi[i] = m + hulepai[2:] + "!"
				marked = true
			}
		}
		if !marked {
			return nil
		}
	}
	return [][]string{append([]string{pair}, mianzi...)}
}

// 九莲形: 单元素长串
func huleMianziJiulian(sp *Shoupai, hulepai string) [][]string {
	if len(sp.fulou) > 0 {
		return nil
	}
	s := hulepai[0]
	if s == 'z' {
		return nil
	}
	bingpai := sp.bingpai[s]
	m := []byte{s}
	for n := 1; n <= 9; n++ {
		c := bingpai[n]
		if c == 0 {
			return nil
		}
		if (n == 1 || n == 9) && c < 3 {
			return nil
		}
		nPai := c
		if n == int(hulepai[1]-'0') {
			nPai--
		}
		for i := 0; i < nPai; i++ {
			m = append(m, byte('0'+n))
		}
	}
	if len(m) != 14 {
		return nil
	}
	m = append(m, hulepai[1])
	m = append(m, hulepai[2:]...)
	m = append(m, '!')
	return [][]string{{string(m)}}
}

// ---- 符与役 ----

type huleMeld struct {
	s        byte
	faces    []int
	tag      byte // 副露方位
	markTag  byte // '_'=自摸标记, '+'/'='/'-'=荣和标记
	markFace int
}

func parseHuleMeld(m string) huleMeld {
	h := huleMeld{s: m[0]}
	pending := byte(0)
	for i := 1; i < len(m); i++ {
		c := m[i]
		switch {
		case c >= '0' && c <= '9':
			if pending != 0 {
				h.tag = pending
				pending = 0
			}
			f := int(faceDigit(c) - '0')
			h.faces = append(h.faces, f)
		case c == '!':
			h.markTag = pending
			h.markFace = h.faces[len(h.faces)-1]
			pending = 0
		default:
			pending = c
		}
	}
	if pending != 0 {
		h.tag = pending
	}
	return h
}

func (h huleMeld) isShun() bool {
	return len(h.faces) >= 2 && h.faces[0] != h.faces[1]
}

func (h huleMeld) hasYao() bool {
	if h.s == 'z' {
		return true
	}
	for _, f := range h.faces {
		if f == 1 || f == 9 {
			return true
		}
	}
	return false
}

type hudi struct {
	fu         int
	menqian    bool
	zimo       bool
	shunzi     map[byte]map[int]int
	kezi       map[byte]map[int]int
	nShunzi    int
	nKezi      int
	nAnkezi    int
	nGangzi    int
	nYaojiu    int
	nZipai     int
	danqi      bool
	pinghu     bool
	zhuangfeng int
	menfeng    int
	melds      []huleMeld
	form       int // 0=一般 1=七对 2=国士 3=九莲
}

func getHudi(mianzi []string, zhuangfeng, menfeng int, rule *Rule) *hudi {
	h := &hudi{
		fu: 20, menqian: true, zimo: true,
		shunzi:     map[byte]map[int]int{'m': {}, 'p': {}, 's': {}},
		kezi:       map[byte]map[int]int{'m': {}, 'p': {}, 's': {}, 'z': {}},
		zhuangfeng: zhuangfeng, menfeng: menfeng,
	}
	switch {
	case len(mianzi) == 1:
		h.form = 3
	case len(mianzi) == 13:
		h.form = 2
	case len(mianzi) == 7:
		h.form = 1
	}
	for _, ms := range mianzi {
		m := parseHuleMeld(ms)
		h.melds = append(h.melds, m)
		if m.markTag != 0 && m.markTag != '_' {
			h.zimo = false
		}
		if m.tag != 0 {
			h.menqian = false
		}
	}
	if h.form != 0 {
		if h.form == 1 {
			h.fu = 25
			for _, m := range h.melds {
				if m.hasYao() {
					h.nYaojiu++
				}
				if m.s == 'z' {
					h.nZipai++
				}
			}
		}
		return h
	}

	for _, m := range h.melds {
		if len(m.faces) == 2 {
			// 雀头
			if m.s == 'z' {
				f := m.faces[0]
				fu := 0
				if f >= 5 {
					fu = 2
				}
				if f == zhuangfeng+1 {
					fu += 2
				}
				if f == menfeng+1 {
					fu += 2
				}
				if fu > 2 && rule.Lianfengpai2Fu {
					fu = 2
				}
				h.fu += fu
			}
			if m.markTag != 0 {
				h.danqi = true
				h.fu += 2
			}
			if m.hasYao() {
				h.nYaojiu++
			}
			if m.s == 'z' {
				h.nZipai++
			}
			continue
		}
		if m.isShun() {
			h.nShunzi++
			h.shunzi[m.s][m.faces[0]]++
			if m.hasYao() {
				h.nYaojiu++
			}
			if m.markTag != 0 {
				// 嵌张/边张 2符
				switch {
				case m.markFace == m.faces[1]:
					h.fu += 2
				case m.markFace == m.faces[2] && m.faces[0] == 1:
					h.fu += 2
				case m.markFace == m.faces[0] && m.faces[2] == 9:
					h.fu += 2
				}
			}
			continue
		}
		// 刻子/杠子
		h.nKezi++
		h.kezi[m.s][m.faces[0]]++
		minko := m.tag != 0 || (m.markTag != 0 && m.markTag != '_')
		fu := 2
		if !minko {
			fu *= 2
			h.nAnkezi++
		}
		if len(m.faces) == 4 {
			fu *= 4
			h.nGangzi++
		}
		if m.hasYao() {
			fu *= 2
			h.nYaojiu++
		}
		if m.s == 'z' {
			h.nZipai++
		}
		h.fu += fu
	}

	h.pinghu = h.menqian && h.fu == 20
	switch {
	case h.pinghu:
		if h.zimo {
			h.fu = 20
		} else {
			h.fu = 30
		}
	default:
		if h.zimo {
			h.fu += 2
		} else if h.menqian {
			h.fu += 10
		}
		if h.fu == 20 {
			h.fu = 30 // 副露平和形
		}
		h.fu = (h.fu + 9) / 10 * 10
	}
	return h
}

func getPreHupai(flag HupaiFlag) []Hupai {
	var hupai []Hupai
	if flag.Lizhi == 1 {
		hupai = append(hupai, Hupai{Name: "立直", Fanshu: 1})
	}
	if flag.Lizhi == 2 {
		hupai = append(hupai, Hupai{Name: "ダブル立直", Fanshu: 2})
	}
	if flag.Yifa {
		hupai = append(hupai, Hupai{Name: "一発", Fanshu: 1})
	}
	if flag.Haidi == 1 {
		hupai = append(hupai, Hupai{Name: "海底摸月", Fanshu: 1})
	}
	if flag.Haidi == 2 {
		hupai = append(hupai, Hupai{Name: "河底撈魚", Fanshu: 1})
	}
	if flag.Lingshang {
		hupai = append(hupai, Hupai{Name: "嶺上開花", Fanshu: 1})
	}
	if flag.Qianggang {
		hupai = append(hupai, Hupai{Name: "槍槓", Fanshu: 1})
	}
	return hupai
}

func getPostHupai(shoupai *Shoupai, rongpai string, baopai, fubaopai []string) []Hupai {
	combined := shoupai.Clone()
	if rongpai != "" {
		combined.Zimo(rongpai[:2], false)
	}
	counts := map[string]int{}
	nHong := 0
	for _, s := range Suits {
		bingpai := combined.bingpai[s]
		for n := 1; n < len(bingpai); n++ {
			counts[string(s)+string(byte('0'+n))] += bingpai[n]
		}
		if s != 'z' {
			nHong += bingpai[0]
		}
	}
	for _, m := range combined.fulou {
		for i := 1; i < len(m); i++ {
			c := m[i]
			if c < '0' || c > '9' {
				continue
			}
			if c == '0' {
				nHong++
			}
			counts[string(m[0])+string(faceDigit(c))]++
		}
	}

	var hupai []Hupai
	nBaopai := 0
	for _, p := range baopai {
		nBaopai += counts[NextPai(p)]
	}
	if nBaopai > 0 {
		hupai = append(hupai, Hupai{Name: "ドラ", Fanshu: nBaopai})
	}
	if nHong > 0 {
		hupai = append(hupai, Hupai{Name: "赤ドラ", Fanshu: nHong})
	}
	nFubaopai := 0
	for _, p := range fubaopai {
		nFubaopai += counts[NextPai(p)]
	}
	if nFubaopai > 0 {
		hupai = append(hupai, Hupai{Name: "裏ドラ", Fanshu: nFubaopai})
	}
	return hupai
}

func getHupai(mianzi []string, h *hudi, preHupai []Hupai, tianhu int, rule *Rule) []Hupai {
	damanguan := getDamanguan(mianzi, h, rule)
	if tianhu == 1 {
		damanguan = append([]Hupai{{Name: "天和", Damanguan: 1}}, damanguan...)
	}
	if tianhu == 2 {
		damanguan = append([]Hupai{{Name: "地和", Damanguan: 1}}, damanguan...)
	}
	if len(damanguan) > 0 {
		return damanguan
	}

	hupai := append([]Hupai(nil), preHupai...)
	add := func(name string, fanshu int) {
		hupai = append(hupai, Hupai{Name: name, Fanshu: fanshu})
	}
	open := 0
	if !h.menqian {
		open = 1
	}

	if h.menqian && h.zimo {
		add("門前清自摸和", 1)
	}

	windNames := []string{"東", "南", "西", "北"}
	if h.kezi['z'][h.zhuangfeng+1] > 0 {
		add("場風 "+windNames[h.zhuangfeng], 1)
	}
	if h.kezi['z'][h.menfeng+1] > 0 {
		add("自風 "+windNames[h.menfeng], 1)
	}
	for f, name := range []string{"白", "發", "中"} {
		if h.kezi['z'][f+5] > 0 {
			add("翻牌 "+name, 1)
		}
	}

	if h.pinghu {
		add("平和", 1)
	}
	if h.nYaojiu == 0 && (rule.Kuitan || h.menqian) {
		add("断幺九", 1)
	}
	if h.menqian && h.form == 0 {
		beikou := 0
		for _, s := range []byte{'m', 'p', 's'} {
			for _, c := range h.shunzi[s] {
				beikou += c / 2
			}
		}
		if beikou == 1 {
			add("一盃口", 1)
		}
		if beikou == 2 {
			add("二盃口", 3)
		}
	}
	for n := 1; n <= 7; n++ {
		if h.shunzi['m'][n] > 0 && h.shunzi['p'][n] > 0 && h.shunzi['s'][n] > 0 {
			add("三色同順", 2-open)
			break
		}
	}
	for _, s := range []byte{'m', 'p', 's'} {
		if h.shunzi[s][1] > 0 && h.shunzi[s][4] > 0 && h.shunzi[s][7] > 0 {
			add("一気通貫", 2-open)
			break
		}
	}
	nBlocks := len(h.melds)
	if h.nYaojiu == nBlocks && h.nShunzi > 0 {
		if h.nZipai > 0 {
			add("混全帯幺九", 2-open)
		} else {
			add("純全帯幺九", 3-open)
		}
	}
	if h.form == 1 {
		add("七対子", 2)
	}
	if h.form == 0 && h.nShunzi == 0 {
		add("対々和", 2)
	}
	if h.nAnkezi == 3 {
		add("三暗刻", 2)
	}
	if h.nGangzi == 3 {
		add("三槓子", 2)
	}
	for n := 1; n <= 9; n++ {
		if h.kezi['m'][n] > 0 && h.kezi['p'][n] > 0 && h.kezi['s'][n] > 0 {
			add("三色同刻", 2)
			break
		}
	}
	if h.nYaojiu == nBlocks && h.nShunzi == 0 && h.nZipai > 0 && h.nZipai < nBlocks {
		add("混老頭", 2)
	}
	nDragon, dragonPair := 0, false
	for f := 5; f <= 7; f++ {
		if h.kezi['z'][f] > 0 {
			nDragon++
		}
	}
	for _, m := range h.melds {
		if len(m.faces) == 2 && m.s == 'z' && m.faces[0] >= 5 {
			dragonPair = true
		}
	}
	if nDragon == 2 && dragonPair {
		add("小三元", 2)
	}
	suited, honors := usedSuits(h.melds)
	if suited == 1 {
		if honors {
			add("混一色", 3-open)
		} else {
			add("清一色", 6-open)
		}
	}
	return hupai
}

func usedSuits(melds []huleMeld) (int, bool) {
	used := map[byte]bool{}
	for _, m := range melds {
		used[m.s] = true
	}
	n := 0
	for _, s := range []byte{'m', 'p', 's'} {
		if used[s] {
			n++
		}
	}
	return n, used['z']
}

func getDamanguan(mianzi []string, h *hudi, rule *Rule) []Hupai {
	double := func(n int) int {
		if rule.DoubleDamanguan {
			return n
		}
		return 1
	}
	var hupai []Hupai
	add := func(name string, n int) {
		hupai = append(hupai, Hupai{Name: name, Damanguan: n})
	}

	switch h.form {
	case 2:
		if strings.Contains(mianzi[0], "!") {
			add("国士無双十三面", double(2))
		} else {
			add("国士無双", 1)
		}
		return hupai
	case 3:
		if jiulianPure(mianzi[0]) {
			add("純正九蓮宝燈", double(2))
		} else {
			add("九蓮宝燈", 1)
		}
		return hupai
	}

	if h.nAnkezi == 4 {
		if h.danqi {
			add("四暗刻単騎", double(2))
		} else {
			add("四暗刻", 1)
		}
	}
	nDragon := 0
	for f := 5; f <= 7; f++ {
		if h.kezi['z'][f] > 0 {
			nDragon++
		}
	}
	if nDragon == 3 {
		hp := Hupai{Name: "大三元", Damanguan: 1}
		if rule.DamanguanBao {
			hp.Baojia = damanguanBaojia(h.melds, func(m huleMeld) bool {
				return m.s == 'z' && m.faces[0] >= 5
			}, 3)
		}
		hupai = append(hupai, hp)
	}
	nWind, windPair := 0, false
	for f := 1; f <= 4; f++ {
		if h.kezi['z'][f] > 0 {
			nWind++
		}
	}
	for _, m := range h.melds {
		if len(m.faces) == 2 && m.s == 'z' && m.faces[0] <= 4 {
			windPair = true
		}
	}
	if nWind == 4 {
		hp := Hupai{Name: "大四喜", Damanguan: double(2)}
		if rule.DamanguanBao {
			hp.Baojia = damanguanBaojia(h.melds, func(m huleMeld) bool {
				return m.s == 'z' && m.faces[0] <= 4
			}, 4)
		}
		hupai = append(hupai, hp)
	} else if nWind == 3 && windPair {
		add("小四喜", 1)
	}
	if allTiles(h.melds, func(s byte, f int) bool { return s == 'z' }) {
		add("字一色", 1)
	}
	if allTiles(h.melds, func(s byte, f int) bool {
		if s == 's' {
			return f == 2 || f == 3 || f == 4 || f == 6 || f == 8
		}
		return s == 'z' && f == 6
	}) {
		add("緑一色", 1)
	}
	if allTiles(h.melds, func(s byte, f int) bool {
		return s != 'z' && (f == 1 || f == 9)
	}) {
		add("清老頭", 1)
	}
	if h.nGangzi == 4 {
		add("四槓子", 1)
	}
	return hupai
}

func allTiles(melds []huleMeld, ok func(s byte, f int) bool) bool {
	if len(melds) == 0 {
		return false
	}
	for _, m := range melds {
		for _, f := range m.faces {
			if !ok(m.s, f) {
				return false
			}
		}
	}
	return true
}

// damanguanBaojia 役满包: 构成役的面子全部为副露时, 最后副露的来源家为包家
func damanguanBaojia(melds []huleMeld, match func(huleMeld) bool, need int) string {
	nFulou := 0
	last := byte(0)
	for _, m := range melds {
		if len(m.faces) < 3 || !match(m) {
			continue
		}
		if m.tag != 0 {
			nFulou++
			last = m.tag
		}
	}
	if nFulou == need {
		return string(last)
	}
	return ""
}

func jiulianPure(m string) bool {
	// 和了牌之前的13张须为 1112345678999
	base := strings.LastIndexByte(m, '!')
	win := m[base-2]
	if win < '0' || win > '9' {
		win = m[base-3]
	}
	counts := [10]int{}
	digits := 0
	for i := 1; i < len(m); i++ {
		c := m[i]
		if c >= '1' && c <= '9' {
			counts[c-'0']++
			digits++
		}
	}
	counts[faceDigit(win)-'0']--
	for n := 1; n <= 9; n++ {
		want := 1
		if n == 1 || n == 9 {
			want = 3
		}
		if counts[n] != want {
			return false
		}
	}
	return true
}

func getDefen(fu int, hupai []Hupai, rongpai string, param *HuleParam) *HuleResult {
	rule := param.Rule
	menfeng := param.Menfeng
	rv := &HuleResult{Hupai: hupai, Fenpei: make([]int, 4)}

	base, base2 := 0, 0
	baojia2 := -1
	if hupai[0].Damanguan > 0 {
		n := 0
		maxSingle := 0
		for _, h := range hupai {
			n += h.Damanguan
			if h.Damanguan > maxSingle {
				maxSingle = h.Damanguan
			}
			if h.Baojia != "" && baojia2 < 0 {
				baojia2 = (menfeng + tagOffset(h.Baojia[0])) % 4
				base2 = 8000 * h.Damanguan
			}
		}
		if !rule.DamanguanCompound {
			n = maxSingle
			if base2 > 8000*n {
				base2 = 8000 * n
			}
		}
		rv.Damanguan = n
		base = 8000 * n
	} else {
		for _, h := range hupai {
			rv.Fanshu += h.Fanshu
		}
		rv.Fu = fu
		switch {
		case rv.Fanshu >= 13 && rule.CountedDamanguan:
			base = 8000
		case rv.Fanshu >= 11:
			base = 6000
		case rv.Fanshu >= 8:
			base = 4000
		case rv.Fanshu >= 6:
			base = 3000
		default:
			base = fu << uint(2+rv.Fanshu)
			if base > 2000 {
				base = 2000
			} else if rule.RoundUpManguan && base >= 1920 {
				base = 2000
			}
		}
	}

	mult := 4
	if menfeng == 0 {
		mult = 6
	}
	chang, lizhi := param.Jicun.Changbang, param.Jicun.Lizhibang

	defen2 := 0
	if baojia2 >= 0 {
		if rongpai != "" {
			base2 /= 2
		}
		base -= base2
		defen2 = ceil100(base2 * mult)
		rv.Fenpei[menfeng] += defen2
		rv.Fenpei[baojia2] -= defen2
	}

	if rongpai != "" || base == 0 {
		payer := baojia2
		if base > 0 {
			payer = (menfeng + tagOffset(rongpai[2])) % 4
		}
		defen := ceil100(base * mult)
		rv.Defen = defen + defen2
		rv.Fenpei[menfeng] += defen + chang*300 + lizhi*1000
		rv.Fenpei[payer] -= defen + chang*300
	} else {
		zhuang := ceil100(base * 2)
		sanjia := ceil100(base)
		defen := 0
		for l := 0; l < 4; l++ {
			if l == menfeng {
				continue
			}
			pay := sanjia
			if l == 0 || menfeng == 0 {
				pay = zhuang
			}
			rv.Fenpei[l] -= pay + chang*100
			defen += pay
		}
		rv.Defen = defen + defen2
		rv.Fenpei[menfeng] += defen + chang*300 + lizhi*1000
	}
	return rv
}

func tagOffset(d byte) int {
	switch d {
	case '+':
		return 1
	case '=':
		return 2
	case '-':
		return 3
	}
	return 0
}

func ceil100(n int) int {
	return (n + 99) / 100 * 100
}
