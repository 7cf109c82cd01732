package mahjong

// He 牌河。记录打出的牌及其修饰(摸切/立直宣言/被鸣方位), 并为振听判定
// 维护出现过的面值集合。
type He struct {
	pai  []string
	find map[string]bool
}

// NewHe 创建空牌河
func NewHe() *He {
	return &He{find: map[string]bool{}}
}

// Dapai 记录打出的牌。p 可带 "_" 或 "*" 修饰。
func (h *He) Dapai(p string) error {
	if _, ok := ValidPai(p); !ok {
		return ErrParse
	}
	if PaiTag(p) != 0 {
		return ErrParse
	}
	h.pai = append(h.pai, p)
	h.find[PaiFace(p)] = true
	return nil
}

// Fulou 最后打出的牌被鸣走, 在其后追加方位修饰。
func (h *He) Fulou(m string) error {
	mm, ok := ValidMianzi(m)
	if !ok {
		return ErrIllegalMianzi
	}
	claimed := mianziClaimed(mm)
	if claimed == "" {
		return ErrIllegalMianzi
	}
	if len(h.pai) == 0 {
		return ErrUnderflow
	}
	last := h.pai[len(h.pai)-1]
	if last[:2] != claimed {
		return ErrIllegalMianzi
	}
	h.pai[len(h.pai)-1] = last + string(PaiTag(mm))
	return nil
}

// Find 面值是否出现在河中, 红5与黑5视为同一面值, 修饰忽略
func (h *He) Find(p string) bool {
	if len(p) < 2 {
		return false
	}
	return h.find[PaiFace(p)]
}

// Pai 河中的牌(按打出顺序, 只读副本)
func (h *He) Pai() []string {
	return append([]string(nil), h.pai...)
}
