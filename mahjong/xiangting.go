package mahjong

// 向听数计算。一般形/七对形/国士形分别计算取最小值, 和了形为 -1。

const xiangtingMax = 99

// XiangtingYiban 一般形(4面子1雀头)的向听数
func XiangtingYiban(sp *Shoupai) int {
	var c [34]int
	for si, s := range Suits {
		bingpai := sp.bingpai[s]
		for n := 1; n < len(bingpai); n++ {
			c[si*9+n-1] = bingpai[n]
		}
	}
	fm := len(sp.fulou)
	best := 8

	var dfs func(i, melds, partials int, pair bool)
	dfs = func(i, melds, partials int, pair bool) {
		for i < 34 && c[i] == 0 {
			i++
		}
		if i >= 34 {
			p := partials
			if melds+p > 4-fm {
				p = 4 - fm - melds
				if p < 0 {
					p = 0
				}
			}
			s := 8 - 2*(fm+melds) - p
			if pair {
				s--
			}
			if s < best {
				best = s
			}
			return
		}
		canShun := i%9 <= 6 && i < 27
		if c[i] >= 3 {
			c[i] -= 3
			dfs(i, melds+1, partials, pair)
			c[i] += 3
		}
		if canShun && c[i+1] > 0 && c[i+2] > 0 {
			c[i]--
			c[i+1]--
			c[i+2]--
			dfs(i, melds+1, partials, pair)
			c[i]++
			c[i+1]++
			c[i+2]++
		}
		if c[i] >= 2 {
			if !pair {
				c[i] -= 2
				dfs(i, melds, partials, true)
				c[i] += 2
			}
			if fm+melds+partials < 4 {
				c[i] -= 2
				dfs(i, melds, partials+1, pair)
				c[i] += 2
			}
		}
		if fm+melds+partials < 4 && canShun {
			if c[i+1] > 0 {
				c[i]--
				c[i+1]--
				dfs(i, melds, partials+1, pair)
				c[i]++
				c[i+1]++
			}
			if c[i+2] > 0 {
				c[i]--
				c[i+2]--
				dfs(i, melds, partials+1, pair)
				c[i]++
				c[i+2]++
			}
		}
		// 当作孤张
		c[i]--
		dfs(i, melds, partials, pair)
		c[i]++
	}
	dfs(0, 0, 0, false)
	return best
}

// XiangtingQidui 七对形的向听数, 副露后不成立
func XiangtingQidui(sp *Shoupai) int {
	if len(sp.fulou) > 0 {
		return xiangtingMax
	}
	pairs, kinds := 0, 0
	for _, s := range Suits {
		bingpai := sp.bingpai[s]
		for n := 1; n < len(bingpai); n++ {
			if bingpai[n] == 0 {
				continue
			}
			kinds++
			if bingpai[n] >= 2 {
				pairs++
			}
		}
	}
	x := 6 - pairs
	if kinds < 7 {
		x += 7 - kinds
	}
	return x
}

// XiangtingGuoshi 国士形的向听数, 副露后不成立
func XiangtingGuoshi(sp *Shoupai) int {
	if len(sp.fulou) > 0 {
		return xiangtingMax
	}
	kinds, pair := 0, false
	for _, s := range Suits {
		bingpai := sp.bingpai[s]
		for n := 1; n < len(bingpai); n++ {
			if s != 'z' && n != 1 && n != 9 {
				continue
			}
			if bingpai[n] == 0 {
				continue
			}
			kinds++
			if bingpai[n] >= 2 {
				pair = true
			}
		}
	}
	x := 13 - kinds
	if pair {
		x--
	}
	return x
}

// Xiangting 向听数, 三种形取最小
func Xiangting(sp *Shoupai) int {
	x := XiangtingYiban(sp)
	if q := XiangtingQidui(sp); q < x {
		x = q
	}
	if g := XiangtingGuoshi(sp); g < x {
		x = g
	}
	return x
}

// Tingpai 列举能使向听数前进的牌, 摸牌后调用返回 nil
func Tingpai(sp *Shoupai) []string {
	return tingpaiWith(sp, Xiangting)
}

func tingpaiWith(sp *Shoupai, f func(*Shoupai) int) []string {
	if sp.zimo != "" {
		return nil
	}
	pai := []string{}
	base := f(sp)
	for _, s := range Suits {
		bingpai := sp.bingpai[s]
		for n := 1; n < len(bingpai); n++ {
			if bingpai[n] >= 4 {
				continue
			}
			bingpai[n]++
			if f(sp) < base {
				pai = append(pai, string(s)+string(byte('0'+n)))
			}
			bingpai[n]--
		}
	}
	return pai
}
