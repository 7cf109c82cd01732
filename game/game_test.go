package game

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func newTestGame() *Game {
	players := []Player{NewBotPlayer(), NewBotPlayer(), NewBotPlayer(), NewBotPlayer()}
	return NewGame(nil, players, nil, "test")
}

func TestSelfplay(t *testing.T) {
	g := newTestGame()
	g.SetSeed(1)
	paipu := g.Play(0)

	// 点棒总量守恒
	sum := 1000 * g.lizhibang
	for _, d := range g.defen {
		sum += d
	}
	if sum != 100000 {
		t.Errorf("total points = %d, want 100000", sum)
	}

	seen := make([]bool, 5)
	for _, r := range paipu.Rank {
		if r < 1 || r > 4 || seen[r] {
			t.Fatalf("Rank = %v, not a permutation", paipu.Rank)
		}
		seen[r] = true
	}
	if len(paipu.Log) == 0 {
		t.Fatal("empty log")
	}
	for i, ju := range paipu.Log {
		if len(ju) == 0 || ju[0].Qipai == nil {
			t.Fatalf("log[%d] does not start with qipai", i)
		}
	}
}

func TestSelfplayDeterminism(t *testing.T) {
	g1 := newTestGame()
	g1.SetSeed(7)
	p1 := g1.Play(2)

	g2 := newTestGame()
	g2.SetSeed(7)
	p2 := g2.Play(2)

	if p1.ID == p2.ID {
		t.Error("paipu IDs should differ")
	}
	if len(p1.Log) != len(p2.Log) {
		t.Fatalf("hand counts differ: %d vs %d", len(p1.Log), len(p2.Log))
	}
	for i := range p1.Defen {
		if p1.Defen[i] != p2.Defen[i] {
			t.Fatalf("Defen differ: %v vs %v", p1.Defen, p2.Defen)
		}
	}
}

func TestPingjuNoting(t *testing.T) {
	g := newTestGame()
	g.kaiju(0)
	g.qipai()
	g.shoupai[0], _ = mahjong.ParseShoupai("m123p456s789z1122")
	for l := 1; l < 4; l++ {
		g.shoupai[l], _ = mahjong.ParseShoupai("m159p159s159z1234")
	}
	g.pingju("荒牌平局")

	want := []int{28000, 24000, 24000, 24000}
	for i, d := range want {
		if g.defen[i] != d {
			t.Fatalf("defen = %v, want %v", g.defen, want)
		}
	}
	if !g.lianzhuang {
		t.Error("tenpai dealer should keep the deal")
	}
}

func TestPingjuTuzhong(t *testing.T) {
	g := newTestGame()
	g.kaiju(0)
	g.qipai()
	g.pingju("四家立直")
	for i, d := range g.defen {
		if d != 25000 {
			t.Errorf("defen[%d] = %d, want 25000", i, d)
		}
	}
	if !g.lianzhuang {
		t.Error("abortive draw should keep the deal")
	}
}

func TestLast(t *testing.T) {
	// 南4局终了, 首位30000点以上
	g := newTestGame()
	g.kaiju(0)
	g.zhuangfeng, g.jushu = 1, 3
	g.defen = []int{40000, 20000, 20000, 20000}
	if !g.last(true) {
		t.Error("game should end after south 4")
	}

	// 首位不足30000点时延长战
	g = newTestGame()
	g.kaiju(0)
	g.zhuangfeng, g.jushu = 1, 3
	if g.last(true) {
		t.Error("game should extend into west round")
	}
	if !g.suddenDeath {
		t.Error("suddenDeath not set")
	}
	g.defen[2] = 31000
	if !g.last(true) {
		t.Error("sudden death should end once someone reaches 30000")
	}

	// 飞了即终局
	g = newTestGame()
	g.kaiju(0)
	g.defen = []int{50000, -1000, 26000, 25000}
	if !g.last(true) {
		t.Error("game should end on negative score")
	}

	// 和了止め: 全终局连庄且庄家为首位
	g = newTestGame()
	g.kaiju(0)
	g.zhuangfeng, g.jushu = 1, 3
	g.lianzhuang = true
	g.defen = []int{20000, 20000, 20000, 40000}
	if !g.last(true) {
		t.Error("dealer top at all-last should end the game")
	}
}

func handTiles(t *testing.T, paistr string) []string {
	t.Helper()
	var pai []string
	var s byte
	for i := 0; i < len(paistr); i++ {
		c := paistr[i]
		if c == 'm' || c == 'p' || c == 's' || c == 'z' {
			s = c
		} else {
			pai = append(pai, string([]byte{s, c}))
		}
	}
	if len(pai) != 13 {
		t.Fatalf("hand %s has %d tiles", paistr, len(pai))
	}
	return pai
}

// riggedWall 构造牌山: hands 为各席位的起手13张, draws 为之后的摸牌
// 顺序, 其余位置以剩下的牌依序填充
func riggedWall(t *testing.T, hands [4]string, draws []string) []string {
	t.Helper()
	full := buildWall(mahjong.NewRule())
	remain := map[string]int{}
	for _, p := range full {
		remain[p]++
	}
	wall := make([]string, len(full))
	take := func(p string, idx int) {
		if remain[p] == 0 {
			t.Fatalf("tile %s overused", p)
		}
		remain[p]--
		wall[idx] = p
	}
	for l, hand := range hands {
		for c, p := range handTiles(t, hand) {
			take(p, 135-(4*c+l))
		}
	}
	for i, p := range draws {
		take(p, 83-i)
	}
	var rest []string
	for _, p := range full {
		if remain[p] > 0 {
			remain[p]--
			rest = append(rest, p)
		}
	}
	for i := range wall {
		if wall[i] == "" {
			wall[i] = rest[0]
			rest = rest[1:]
		}
	}
	return wall
}

func TestDapaiTsumogiri(t *testing.T) {
	g := newTestGame()
	g.kaiju(0)
	g.qipai()
	g.shoupai[0], _ = mahjong.ParseShoupai("m123p456s789z1122z1")
	for l := 1; l < 4; l++ {
		g.shoupai[l], _ = mahjong.ParseShoupai("m159p159s159z1234")
	}
	done, hule := g.doDapai(0, "z1_", false)
	if done || hule {
		t.Fatalf("doDapai = (%v, %v), want (false, false)", done, hule)
	}
	pond := g.he[0].Pai()
	if len(pond) != 1 || pond[0] != "z1_" {
		t.Fatalf("he = %v, want [z1_]", pond)
	}
	if !g.he[0].Find("z1") {
		t.Error("Find(z1) = false after tsumogiri")
	}
	// 打出自家待ち即振听
	if g.nengRong[0] {
		t.Error("seat still ron-eligible after discarding its wait")
	}
}

func TestFuritenLizhi(t *testing.T) {
	g := newTestGame()
	g.kaiju(0)
	g.qipai()
	g.shoupai[0], _ = mahjong.ParseShoupai("m123p456s789z1122z1")
	for l := 1; l < 4; l++ {
		g.shoupai[l], _ = mahjong.ParseShoupai("m159p159s159z1234")
	}
	g.lizhi[0] = 1
	if done, _ := g.doDapai(0, "z1_", false); done {
		t.Fatal("hand ended unexpectedly")
	}
	// 立直中见逃自摸切同样进入振听
	if g.nengRong[0] {
		t.Error("lizhi seat still ron-eligible after discarding its wait")
	}
}

func TestRonDouble(t *testing.T) {
	wall := riggedWall(t, [4]string{
		"m19p19s19z1123455",
		"m234567p234567s8",
		"m234567p234567s8",
		"m1199p1199s19z177",
	}, []string{"s8"})
	g := newTestGame()
	g.SetWalls([][]string{wall})
	g.kaiju(0)
	g.qipai()
	if !g.playHand() {
		t.Fatal("hand should end in a win")
	}
	// 断幺+宝牌(指示牌m3)40符2翻, 两家各自向放铳家收取
	want := []int{19800, 27600, 27600, 25000}
	for i, d := range want {
		if g.defen[i] != d {
			t.Fatalf("defen = %v, want %v", g.defen, want)
		}
	}
}

func TestRonHeadBump(t *testing.T) {
	wall := riggedWall(t, [4]string{
		"m19p19s19z1123455",
		"m234567p234567s8",
		"m234567p234567s8",
		"m1199p1199s19z177",
	}, []string{"s8"})
	rule := mahjong.NewRule()
	rule.MaxSimultaneousHule = 1
	players := []Player{NewBotPlayer(), NewBotPlayer(), NewBotPlayer(), NewBotPlayer()}
	g := NewGame(rule, players, nil, "test")
	g.SetWalls([][]string{wall})
	g.kaiju(0)
	g.qipai()
	if !g.playHand() {
		t.Fatal("hand should end in a win")
	}
	// 头跳: 只有下家和了
	want := []int{22400, 27600, 25000, 25000}
	for i, d := range want {
		if g.defen[i] != d {
			t.Fatalf("defen = %v, want %v", g.defen, want)
		}
	}
}

func TestSanjiahePingju(t *testing.T) {
	wall := riggedWall(t, [4]string{
		"m19p19s19z1123455",
		"m234567p234567s8",
		"m234567p234567s8",
		"m234567p234567s8",
	}, []string{"s8"})
	g := newTestGame()
	g.SetWalls([][]string{wall})
	g.kaiju(0)
	g.qipai()
	if g.playHand() {
		t.Fatal("three rons should abort the hand")
	}
	for i, d := range g.defen {
		if d != 25000 {
			t.Errorf("defen[%d] = %d, want 25000", i, d)
		}
	}
	if !g.lianzhuang {
		t.Error("abortive draw should keep the deal")
	}
	ju := g.paipu.Log[len(g.paipu.Log)-1]
	last := ju[len(ju)-1]
	if last.Pingju == nil || last.Pingju.Name != "三家和" {
		t.Errorf("last record = %+v, want 三家和 pingju", last)
	}
}

func TestSikaigangPingju(t *testing.T) {
	g := newTestGame()
	g.kaiju(0)
	g.qipai()
	g.nGang = []int{2, 1, 1, 0}
	g.shoupai[0], _ = mahjong.ParseShoupai("m123p456s789z1122z5")
	for l := 1; l < 4; l++ {
		g.shoupai[l], _ = mahjong.ParseShoupai("m159p159s159z1234")
	}
	done, hule := g.doDapai(0, "z5_", false)
	if !done || hule {
		t.Fatalf("doDapai = (%v, %v), want (true, false)", done, hule)
	}
	if !g.lianzhuang {
		t.Error("abortive draw should keep the deal")
	}
	ju := g.paipu.Log[len(g.paipu.Log)-1]
	last := ju[len(ju)-1]
	if last.Pingju == nil || last.Pingju.Name != "四開槓" {
		t.Errorf("last record = %+v, want 四開槓 pingju", last)
	}
}

func TestJieju(t *testing.T) {
	g := newTestGame()
	g.kaiju(0)
	g.defen = []int{35000, 25000, 25000, 15000}
	g.jieju()

	if got := g.paipu.Rank; got[0] != 1 || got[3] != 4 {
		t.Errorf("Rank = %v", got)
	}
	// 同点时起家侧顺位在前
	if g.paipu.Rank[1] != 2 || g.paipu.Rank[2] != 3 {
		t.Errorf("Rank = %v, want seat order on tie", g.paipu.Rank)
	}
	want := []string{"45.0", "5.0", "-15.0", "-35.0"}
	for i, p := range want {
		if g.paipu.Point[i] != p {
			t.Fatalf("Point = %v, want %v", g.paipu.Point, want)
		}
	}
}
