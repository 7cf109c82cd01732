package mahjong

import (
	"strings"
)

// Shoupai 手牌。含暗牌(兵牌)与副露, 摸牌/打牌/副露/杠均为先校验后更新,
// 返回错误时手牌保持原状。
type Shoupai struct {
	bingpai map[byte][]int // 暗牌张数表, [0]为红5数(同时计入[5])
	hidden  int            // 背面牌("_")张数, 他家手牌复盘用
	fulou   []string       // 副露面子, 按副露顺序
	zimo    string         // 刚摸的牌, 或刚副露的面子; 空串表示待摸牌
	lizhi   bool
}

// NewShoupai 以配牌创建手牌
func NewShoupai(qipai []string) (*Shoupai, error) {
	sp := &Shoupai{bingpai: emptyBingpai()}
	for _, p := range qipai {
		if p == "_" {
			sp.hidden++
			continue
		}
		if _, ok := ValidPai(p); !ok {
			return nil, ErrParse
		}
		if err := sp.increase(p[0], PaiRank(p)); err != nil {
			return nil, err
		}
	}
	return sp, nil
}

func emptyBingpai() map[byte][]int {
	return map[byte][]int{
		'm': make([]int, 10),
		'p': make([]int, 10),
		's': make([]int, 10),
		'z': make([]int, 8),
	}
}

// ParseShoupai 解析手牌串。超出14张的部分被舍弃, 末尾为','时表示刚副露待打牌。
func ParseShoupai(paistr string) (*Shoupai, error) {
	parts := strings.Split(paistr, ",")
	bingstr := parts[0]
	parts = parts[1:]

	var qipai []string
	suit := byte(0)
	for i := 0; i < len(bingstr); i++ {
		c := bingstr[i]
		switch {
		case c == '_':
			qipai = append(qipai, "_")
		case suitIndex(c) >= 0:
			suit = c
		case c >= '0' && c <= '9' && suit != 0:
			if suit == 'z' && (c < '1' || c > '7') {
				continue
			}
			qipai = append(qipai, string([]byte{suit, c}))
		case c == '*':
		default:
			return nil, ErrParse
		}
	}

	nFulou := 0
	for _, m := range parts {
		if m != "" {
			nFulou++
		}
	}
	max := 14 - nFulou*3
	if len(qipai) > max {
		qipai = qipai[:max]
	}
	var zimo string
	if len(qipai) >= 2 && (len(qipai)-2)%3 == 0 {
		zimo = qipai[len(qipai)-1]
	}

	sp, err := NewShoupai(qipai)
	if err != nil {
		return nil, err
	}
	last := ""
	for _, m := range parts {
		if m == "" {
			sp.zimo = last
			break
		}
		if mm, ok := ValidMianzi(m); ok {
			sp.fulou = append(sp.fulou, mm)
			last = mm
		}
	}
	if sp.zimo == "" {
		sp.zimo = zimo
	}
	sp.lizhi = strings.HasSuffix(bingstr, "*")
	return sp, nil
}

// Clone 深拷贝
func (sp *Shoupai) Clone() *Shoupai {
	c := &Shoupai{
		bingpai: emptyBingpai(),
		hidden:  sp.hidden,
		fulou:   append([]string(nil), sp.fulou...),
		zimo:    sp.zimo,
		lizhi:   sp.lizhi,
	}
	for s, v := range sp.bingpai {
		copy(c.bingpai[s], v)
	}
	return c
}

// String 还原手牌串。暗牌升序排列(红5紧邻5之前), 刚摸的牌放在末尾。
func (sp *Shoupai) String() string {
	var b strings.Builder
	n := sp.hidden
	if sp.zimo == "_" {
		n--
	}
	b.WriteString(strings.Repeat("_", n))

	for _, s := range Suits {
		bingpai := sp.bingpai[s]
		suitstr := []byte{s}
		nHong := 0
		if s != 'z' {
			nHong = bingpai[0]
		}
		for i := 1; i < len(bingpai); i++ {
			nPai := bingpai[i]
			if sp.zimo != "" {
				if sp.zimo == string([]byte{s, byte('0' + i)}) {
					nPai--
				}
				if i == 5 && sp.zimo == string(s)+"0" {
					nPai--
					nHong--
				}
			}
			for j := 0; j < nPai; j++ {
				if i == 5 && nHong > 0 {
					suitstr = append(suitstr, '0')
					nHong--
				} else {
					suitstr = append(suitstr, byte('0'+i))
				}
			}
		}
		if len(suitstr) > 1 {
			b.Write(suitstr)
		}
	}

	if sp.zimo != "" && len(sp.zimo) <= 2 && sp.zimo != "_" {
		b.WriteString(sp.zimo)
	}
	if sp.lizhi {
		b.WriteByte('*')
	}
	for _, m := range sp.fulou {
		b.WriteByte(',')
		b.WriteString(m)
	}
	if len(sp.zimo) > 2 {
		b.WriteByte(',')
	}
	return b.String()
}

// Menqian 门前清判定, 暗杠不破坏门清
func (sp *Shoupai) Menqian() bool {
	for _, m := range sp.fulou {
		if strings.ContainsAny(m, "+=-") {
			return false
		}
	}
	return true
}

// Lizhi 立直状态
func (sp *Shoupai) Lizhi() bool {
	return sp.lizhi
}

// Fulou 副露列表(只读副本)
func (sp *Shoupai) Fulou() []string {
	return append([]string(nil), sp.fulou...)
}

func (sp *Shoupai) increase(s byte, n int) error {
	bingpai := sp.bingpai[s]
	face := n
	if face == 0 {
		face = 5
	}
	if bingpai[face] == 4 {
		return ErrOverflow
	}
	bingpai[face]++
	if n == 0 {
		bingpai[0]++
	}
	return nil
}

func (sp *Shoupai) decrease(s byte, n int, check bool) error {
	bingpai := sp.bingpai[s]
	short := false
	switch {
	case n == 0:
		short = bingpai[0] == 0
	case n == 5:
		short = bingpai[5]-bingpai[0] == 0
	default:
		short = bingpai[n] == 0
	}
	if short {
		// 指定的牌不在明示的手牌中时消费一张暗牌
		if sp.hidden == 0 {
			if check {
				return ErrNotInHand
			}
			return nil
		}
		sp.hidden--
		return nil
	}
	face := n
	if face == 0 {
		face = 5
	}
	bingpai[face]--
	if n == 0 {
		bingpai[0]--
	}
	return nil
}

// Zimo 摸牌。p 为 "_" 时表示摸入一张不可见牌。
func (sp *Shoupai) Zimo(p string, check bool) error {
	if check && sp.zimo != "" {
		return ErrOverflow
	}
	if p == "_" {
		sp.hidden++
		sp.zimo = p
		return nil
	}
	if _, ok := ValidPai(p); !ok || strings.ContainsAny(p, "_*+=-") {
		return ErrParse
	}
	if err := sp.increase(p[0], PaiRank(p)); err != nil {
		return err
	}
	sp.zimo = p
	return nil
}

// Dapai 打牌。p 以"*"结尾时同时宣告立直。
func (sp *Shoupai) Dapai(p string, check bool) error {
	if check && sp.zimo == "" {
		return ErrUnderflow
	}
	lizhi := strings.HasSuffix(p, "*")
	base := strings.TrimSuffix(strings.TrimSuffix(p, "*"), "_")
	if base != "_" {
		if _, ok := ValidPai(base); !ok || strings.ContainsAny(base, "+=-") {
			return ErrParse
		}
	}
	if base == "_" {
		if sp.hidden == 0 {
			return ErrNotInHand
		}
		sp.hidden--
	} else if err := sp.decrease(base[0], PaiRank(base), check); err != nil {
		return err
	}
	if lizhi {
		sp.lizhi = true
	}
	sp.zimo = ""
	return nil
}

// Fulou 副露(吃/碰/大明杠)。暗杠与加杠走 Gang。
func (sp *Shoupai) FulouMianzi(m string, check bool) error {
	mm, ok := ValidMianzi(m)
	if !ok || !strings.ContainsAny(mm, "+=-") {
		return ErrIllegalMianzi
	}
	if len(mm) >= 2 && mm[len(mm)-1] >= '0' && mm[len(mm)-1] <= '9' && isGangMianzi(mm) {
		// 加杠不经此处
		return ErrIllegalMianzi
	}
	if check && sp.zimo != "" {
		return ErrOverflow
	}
	backup := sp.Clone()
	s := mm[0]
	for i := 1; i < len(mm); i++ {
		c := mm[i]
		if c < '0' || c > '9' {
			continue
		}
		if i+1 < len(mm) && (mm[i+1] == '+' || mm[i+1] == '=' || mm[i+1] == '-') {
			continue // 被鸣的牌来自他家
		}
		if err := sp.decrease(s, int(c-'0'), check); err != nil {
			sp.restore(backup)
			return err
		}
	}
	sp.fulou = append(sp.fulou, mm)
	if !isGangMianzi(mm) {
		sp.zimo = mm
	}
	return nil
}

// Gang 暗杠或加杠。需在摸牌后进行, 杠后等待岭上牌。
func (sp *Shoupai) Gang(m string, check bool) error {
	mm, ok := ValidMianzi(m)
	if !ok || !isGangMianzi(mm) {
		return ErrIllegalMianzi
	}
	if check {
		if sp.zimo == "" {
			return ErrUnderflow
		}
		if len(sp.zimo) > 2 {
			return ErrIllegalMianzi
		}
	}
	s := mm[0]
	backup := sp.Clone()
	if !strings.ContainsAny(mm, "+=-") {
		// 暗杠
		for i := 1; i < len(mm); i++ {
			if err := sp.decrease(s, int(mm[i]-'0'), check); err != nil {
				sp.restore(backup)
				return err
			}
		}
		sp.fulou = append(sp.fulou, mm)
	} else if mm[len(mm)-1] >= '0' && mm[len(mm)-1] <= '9' && strings.IndexAny(mm, "+=-") == len(mm)-2 {
		// 加杠: 替换已有的碰
		base := mm[:len(mm)-1]
		idx := -1
		for i, f := range sp.fulou {
			if f == base {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrIllegalMianzi
		}
		if err := sp.decrease(s, int(mm[len(mm)-1]-'0'), check); err != nil {
			return err
		}
		sp.fulou[idx] = mm
	} else {
		// 大明杠经 FulouMianzi
		return ErrIllegalMianzi
	}
	sp.zimo = ""
	return nil
}

func (sp *Shoupai) restore(backup *Shoupai) {
	sp.bingpai = backup.bingpai
	sp.hidden = backup.hidden
	sp.fulou = backup.fulou
	sp.zimo = backup.zimo
	sp.lizhi = backup.lizhi
}

// GetDapai 列举可打的牌, 摸牌前返回 nil。check 时应用现物及筋的食替禁止。
// 刚摸的牌以"_"后缀区分摸切。立直后只能摸切。
func (sp *Shoupai) GetDapai(check bool) []string {
	if sp.zimo == "" {
		return nil
	}
	deny := map[string]bool{}
	if check && len(sp.zimo) > 2 {
		m := sp.zimo
		s := m[0]
		n := int(mianziClaimed(m)[1] - '0')
		if n == 0 {
			n = 5
		}
		deny[string(s)+string(byte('0'+n))] = true
		if isShunMianzi(m) {
			tagAt := strings.IndexAny(m, "+=-")
			if tagAt == 2 && n < 7 {
				// 例: 吃1做123后禁打4
				deny[string(s)+string(byte('0'+n+3))] = true
			}
			if tagAt == len(m)-1 && n > 3 {
				deny[string(s)+string(byte('0'+n-3))] = true
			}
		}
	}

	if sp.lizhi {
		if len(sp.zimo) <= 2 && sp.zimo != "_" {
			return []string{sp.zimo + "_"}
		}
		return []string{}
	}

	dapai := []string{}
	for _, s := range Suits {
		bingpai := sp.bingpai[s]
		for n := 1; n < len(bingpai); n++ {
			if bingpai[n] == 0 {
				continue
			}
			face := string(s) + string(byte('0'+n))
			if deny[face] {
				continue
			}
			if n != 5 || s == 'z' {
				if face != sp.zimo || bingpai[n] > 1 {
					dapai = append(dapai, face)
				}
				continue
			}
			plain := bingpai[5] - bingpai[0]
			if plain > 0 && (face != sp.zimo || plain > 1) {
				dapai = append(dapai, face)
			}
			hong := string(s) + "0"
			if bingpai[0] > 0 && (hong != sp.zimo || bingpai[0] > 1) {
				dapai = append(dapai, hong)
			}
		}
	}
	if len(sp.zimo) <= 2 && sp.zimo != "_" {
		dapai = append(dapai, sp.zimo+"_")
	}
	return dapai
}

// GetChiMianzi 列举能以 p 吃出的面子。只能吃上家(修饰为"-")。
// 摸牌后调用返回 nil(多牌)。check 时排除吃后无牌可打的食替形。
func (sp *Shoupai) GetChiMianzi(p string, check bool) ([]string, error) {
	if _, ok := ValidPai(p); !ok {
		return nil, ErrParse
	}
	d := PaiTag(p)
	if d == 0 {
		return nil, ErrParse
	}
	s, pd := p[0], p[1]
	n := int(pd - '0')
	if n == 0 {
		n = 5
	}
	mianzi := []string{}
	if s == 'z' || d != '-' {
		return mianzi, nil
	}
	if sp.zimo != "" {
		return nil, nil
	}
	if sp.lizhi {
		return mianzi, nil
	}

	bingpai := sp.bingpai[s]
	concealed := sp.hidden
	for _, ss := range Suits {
		for i := 1; i < len(sp.bingpai[ss]); i++ {
			concealed += sp.bingpai[ss][i]
		}
	}

	add := func(a, b int, outer int) {
		if a < 1 || b > 9 || bingpai[a] == 0 || bingpai[b] == 0 {
			return
		}
		if check {
			denyCount := bingpai[n]
			if outer >= 1 && outer <= 9 {
				denyCount += bingpai[outer]
			}
			if denyCount >= concealed-2 {
				return
			}
		}
		for _, va := range hongVariants(bingpai, a) {
			for _, vb := range hongVariants(bingpai, b) {
				digits := []struct {
					face int
					str  string
				}{
					{a, va}, {b, vb}, {n, string(pd) + string(d)},
				}
				// 按面值升序, 被鸣的牌带修饰
				for i := 0; i < len(digits); i++ {
					for j := i + 1; j < len(digits); j++ {
						if digits[j].face < digits[i].face {
							digits[i], digits[j] = digits[j], digits[i]
						}
					}
				}
				mianzi = append(mianzi, string(s)+digits[0].str+digits[1].str+digits[2].str)
			}
		}
	}
	add(n-2, n-1, n-3)
	add(n-1, n+1, 0)
	add(n+1, n+2, n+3)
	return mianzi, nil
}

// hongVariants 面值 f 在手中的可用表示(红5与黑5分列)
func hongVariants(bingpai []int, f int) []string {
	if f != 5 {
		return []string{string(byte('0' + f))}
	}
	var v []string
	if bingpai[5]-bingpai[0] > 0 {
		v = append(v, "5")
	}
	if bingpai[0] > 0 {
		v = append(v, "0")
	}
	return v
}

// GetPengMianzi 列举能以 p 碰出的面子。摸牌后调用返回 nil(多牌)。
func (sp *Shoupai) GetPengMianzi(p string) ([]string, error) {
	if _, ok := ValidPai(p); !ok {
		return nil, ErrParse
	}
	d := PaiTag(p)
	if d == 0 {
		return nil, ErrParse
	}
	s, pd := p[0], p[1]
	n := int(pd - '0')
	if n == 0 {
		n = 5
	}
	mianzi := []string{}
	if sp.zimo != "" {
		return nil, nil
	}
	if sp.lizhi {
		return mianzi, nil
	}
	bingpai := sp.bingpai[s]
	if bingpai[n] < 2 {
		return mianzi, nil
	}
	tail := string(pd) + string(d)
	if n == 5 && s != 'z' {
		plain, hong := bingpai[5]-bingpai[0], bingpai[0]
		if plain >= 2 {
			mianzi = append(mianzi, string(s)+"55"+tail)
		}
		if plain >= 1 && hong >= 1 {
			mianzi = append(mianzi, string(s)+"50"+tail)
		}
		if hong >= 2 {
			mianzi = append(mianzi, string(s)+"00"+tail)
		}
	} else {
		f := string(byte('0' + n))
		mianzi = append(mianzi, string(s)+f+f+tail)
	}
	return mianzi, nil
}

// GetGangMianzi 列举可杠的面子。p 非空时为大明杠, 空串时列举暗杠与加杠。
// 少牌或鸣牌直后返回 nil。立直后仅允许摸到第4张时的暗杠。
func (sp *Shoupai) GetGangMianzi(p string) ([]string, error) {
	mianzi := []string{}
	if p != "" {
		if _, ok := ValidPai(p); !ok {
			return nil, ErrParse
		}
		d := PaiTag(p)
		if d == 0 {
			return nil, ErrParse
		}
		s, pd := p[0], p[1]
		n := int(pd - '0')
		if n == 0 {
			n = 5
		}
		if sp.zimo != "" {
			return nil, nil
		}
		if sp.lizhi {
			return mianzi, nil
		}
		bingpai := sp.bingpai[s]
		if bingpai[n] != 3 {
			return mianzi, nil
		}
		digits := ""
		if n == 5 && s != 'z' {
			digits = strings.Repeat("5", bingpai[5]-bingpai[0]) + strings.Repeat("0", bingpai[0])
		} else {
			digits = strings.Repeat(string(byte('0'+n)), 3)
		}
		mianzi = append(mianzi, string(s)+digits+string(pd)+string(d))
		return mianzi, nil
	}

	if sp.zimo == "" || len(sp.zimo) > 2 {
		return nil, nil
	}
	zimoFace := ""
	if sp.zimo != "_" {
		zimoFace = PaiFace(sp.zimo)
	}
	for _, s := range Suits {
		bingpai := sp.bingpai[s]
		for n := 1; n < len(bingpai); n++ {
			if bingpai[n] != 4 {
				continue
			}
			face := string(s) + string(byte('0'+n))
			if sp.lizhi && face != zimoFace {
				continue
			}
			digits := ""
			if n == 5 && s != 'z' {
				digits = strings.Repeat("5", bingpai[5]-bingpai[0]) + strings.Repeat("0", bingpai[0])
			} else {
				digits = strings.Repeat(string(byte('0'+n)), 4)
			}
			mianzi = append(mianzi, string(s)+digits)
		}
	}
	if sp.lizhi {
		return mianzi, nil
	}
	for _, m := range sp.fulou {
		if isGangMianzi(m) || isShunMianzi(m) {
			continue
		}
		s := m[0]
		n := int(faceDigit(m[1]) - '0')
		bingpai := sp.bingpai[s]
		if bingpai[n] == 0 {
			continue
		}
		added := byte('0' + n)
		if n == 5 && s != 'z' && bingpai[0] > 0 {
			added = '0'
		}
		mianzi = append(mianzi, m+string(added))
	}
	return mianzi, nil
}
