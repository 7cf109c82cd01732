package mahjong

import (
	"regexp"
	"strings"
)

// 牌用字符串表示: 第1字符为花色(m=万 p=饼 s=索 z=字), 第2字符为点数, 0 表示红5。
// 河中的牌可带修饰: _=摸切 *=立直宣言 +=下家鸣 ==对面鸣 -=上家鸣。
// "_" 单独出现时表示背面朝上的不可见牌。

var rePai = regexp.MustCompile(`^(?:[mps]\d|z[1-7])_?\*?[+=-]?$`)

// Suits 花色遍历顺序
var Suits = []byte{'m', 'p', 's', 'z'}

// ValidPai 校验牌串, 合法时原样返回
func ValidPai(p string) (string, bool) {
	if !rePai.MatchString(p) {
		return "", false
	}
	return p, true
}

// PaiSuit 返回花色字符
func PaiSuit(p string) byte {
	return p[0]
}

// PaiRank 返回点数, 红5为0
func PaiRank(p string) int {
	return int(p[1] - '0')
}

// PaiFace 去掉修饰并将红5归一为5, 返回两字符的素牌
func PaiFace(p string) string {
	s, n := p[0], p[1]
	if n == '0' {
		n = '5'
	}
	return string([]byte{s, n})
}

// PaiTag 返回鸣牌方位修饰, 没有则返回0
func PaiTag(p string) byte {
	i := strings.IndexAny(p, "+=-")
	if i < 0 {
		return 0
	}
	return p[i]
}

func suitIndex(s byte) int {
	switch s {
	case 'm':
		return 0
	case 'p':
		return 1
	case 's':
		return 2
	case 'z':
		return 3
	}
	return -1
}

// maxRank 每种花色的最大点数
func maxRank(s byte) int {
	if s == 'z' {
		return 7
	}
	return 9
}

// IsYaopai 幺九牌(老头牌和字牌)判定, p 须为素牌形式
func IsYaopai(p string) bool {
	if p[0] == 'z' {
		return true
	}
	return p[1] == '1' || p[1] == '9'
}

// NextPai 返回 p 的下一枚牌(宝牌指示牌用), 9之后回到1, 字牌东南西北/白发中各自循环
func NextPai(p string) string {
	if _, ok := ValidPai(p); !ok {
		return ""
	}
	s, n := p[0], PaiRank(p)
	if n == 0 {
		n = 5
	}
	switch {
	case s == 'z' && n < 5:
		n = n%4 + 1
	case s == 'z':
		n = (n-4)%3 + 5
	default:
		n = n%9 + 1
	}
	return string(s) + string(byte('0'+n))
}
