package mahjong

import "sort"

// 面子用字符串表示: 花色后跟全部点数, 副露时在被鸣的牌后加方位修饰。
// 例: "m1-23"=吃上家的1万, "s505="=碰对面的5索(含红5), "p5500"=暗杠,
// "s5550+"=大明杠下家的红5, "z666-6"=加杠。暗杠无修饰, 点数降序排列。

func faceDigit(c byte) byte {
	if c == '0' {
		return '5'
	}
	return c
}

// ValidMianzi 校验面子串并返回正规形, 非法时返回 false。
// 正规形保证: 被鸣的牌位于修饰符之前, 吃的点数升序, 杠的点数降序(红5在后)。
func ValidMianzi(m string) (string, bool) {
	if len(m) < 4 {
		return "", false
	}
	s := m[0]
	if suitIndex(s) < 0 {
		return "", false
	}
	var digits []byte
	tag, tagPos := byte(0), -1
	for i := 1; i < len(m); i++ {
		c := m[i]
		switch {
		case c >= '0' && c <= '9':
			if s == 'z' && (c == '0' || c == '8' || c == '9') {
				return "", false
			}
			digits = append(digits, c)
		case c == '+' || c == '=' || c == '-':
			if tag != 0 {
				return "", false
			}
			tag, tagPos = c, len(digits)
		default:
			return "", false
		}
	}

	same := len(digits) >= 3
	for _, d := range digits {
		if faceDigit(d) != faceDigit(digits[0]) {
			same = false
		}
	}
	if same {
		switch {
		case len(digits) == 3 && tagPos == 3:
			// 碰: 手中两枚在前, 被鸣的牌紧邻修饰符
			return kaniCanonical(s, digits, tag, nil), true
		case len(digits) == 4 && tagPos == 3:
			// 加杠: 碰的正规形后缀加入的牌
			return kaniCanonical(s, digits[:3], tag, digits[3:]), true
		case len(digits) == 4 && (tag == 0 || tagPos == 4):
			// 暗杠/大明杠: 点数降序
			d := append([]byte(nil), digits...)
			sort.Slice(d, func(i, j int) bool { return d[i] > d[j] })
			out := append([]byte{s}, d...)
			if tag != 0 {
				out = append(out, tag)
			}
			return string(out), true
		}
		return "", false
	}

	// 顺子: 只能吃上家, 修饰符在被鸣的点数之后
	if s == 'z' || len(digits) != 3 || tag != '-' || tagPos < 1 {
		return "", false
	}
	type tok struct {
		d      byte
		tagged bool
	}
	hong := false
	toks := make([]tok, 3)
	for i, d := range digits {
		if d == '0' {
			hong = true
		}
		toks[i] = tok{faceDigit(d), i+1 == tagPos}
	}
	sort.Slice(toks, func(i, j int) bool { return toks[i].d < toks[j].d })
	if toks[0].d+1 != toks[1].d || toks[1].d+1 != toks[2].d {
		return "", false
	}
	out := []byte{s}
	for _, t := range toks {
		d := t.d
		if hong && d == '5' {
			d = '0'
		}
		out = append(out, d)
		if t.tagged {
			out = append(out, '-')
		}
	}
	return string(out), true
}

func kaniCanonical(s byte, kezi []byte, tag byte, extra []byte) string {
	d := append([]byte(nil), kezi...)
	if d[0] == '0' && d[1] == '5' {
		d[0], d[1] = d[1], d[0]
	}
	out := append([]byte{s}, d...)
	out = append(out, tag)
	out = append(out, extra...)
	return string(out)
}

// mianziClaimed 返回副露面子中被鸣的那张牌, 暗杠返回空串
func mianziClaimed(m string) string {
	for i := 1; i < len(m); i++ {
		if m[i] == '+' || m[i] == '=' || m[i] == '-' {
			return string([]byte{m[0], m[i-1]})
		}
	}
	return ""
}

// isGangMianzi 杠子判定(含加杠)
func isGangMianzi(m string) bool {
	n := 0
	for i := 1; i < len(m); i++ {
		if m[i] >= '0' && m[i] <= '9' {
			n++
		}
	}
	return n == 4
}

// isShunMianzi 顺子判定
func isShunMianzi(m string) bool {
	var last byte
	for i := 1; i < len(m); i++ {
		c := m[i]
		if c < '0' || c > '9' {
			continue
		}
		if last != 0 && faceDigit(c) != last {
			return true
		}
		last = faceDigit(c)
	}
	return false
}
