package mahjong

import "errors"

// 风位/方位序号: 0=东(庄) 1=南 2=西 3=北
const (
	Dong = iota
	Nan
	Xi
	Bei
)

// 错误分类: 所有操作先校验后更新, 返回错误时状态不变
var (
	ErrParse         = errors.New("mahjong: invalid notation")
	ErrOverflow      = errors.New("mahjong: too many pai")
	ErrUnderflow     = errors.New("mahjong: too few pai")
	ErrNotInHand     = errors.New("mahjong: pai not in hand")
	ErrIllegalMianzi = errors.New("mahjong: illegal mianzi")
	ErrNotAWin       = errors.New("mahjong: not a winning hand")
)
