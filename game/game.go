package game

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/sirupsen/logrus"
)

// Game 半庄战進行器。单线程驱动全部状态迁移, 只在征询对局者应答时
// 并行扇出, 全员应答后统一仲裁, 因此对同一牌山与同一应答序列结果确定。
type Game struct {
	rule    *mahjong.Rule
	players []Player
	names   []string
	title   string
	paipu   *Paipu
	rng     *rand.Rand
	walls   [][]string // 预设牌山(按局), 复盘与测试用

	qijia      int
	zhuangfeng int
	jushu      int
	maxJushu   int
	changbang  int
	lizhibang  int
	defen      []int // 按对局者id

	shan       *Shan
	shoupai    []*mahjong.Shoupai
	he         []*mahjong.He
	lunban     int
	diyizimo   bool
	fengpai    bool
	lizhi      []int
	yifa       []bool
	nGang      []int
	nengRong   []bool
	lianzhuang bool

	// lastGangMing 最近一次杠是否明杠(大明杠/加杠), 决定杠宝牌翻开时机
	lastGangMing bool
	// lingshangPending 大明杠成立, 下一摸从岭上
	lingshangPending bool
	suddenDeath      bool
}

// NewGame 创建对局。players 按席位顺序, 长度须为4。
func NewGame(rule *mahjong.Rule, players []Player, names []string, title string) *Game {
	if rule == nil {
		rule = mahjong.NewRule()
	}
	if names == nil {
		names = []string{"私", "下家", "対面", "上家"}
	}
	return &Game{
		rule:    rule,
		players: players,
		names:   names,
		title:   title,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed 固定乱数种子, 测试用
func (g *Game) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// SetWalls 设置每局的预设牌山
func (g *Game) SetWalls(walls [][]string) {
	g.walls = walls
}

// Play 进行一战直至终局, 返回牌谱
func (g *Game) Play(qijia int) *Paipu {
	g.kaiju(qijia)
	for {
		g.qipai()
		done := g.playHand()
		if g.last(done) {
			break
		}
	}
	g.jieju()
	return g.paipu
}

func (g *Game) playerID(l int) int {
	return (g.qijia + g.jushu + l) % 4
}

// broadcast 记录真实消息并按视角屏蔽后发给全员, 收集应答
func (g *Game) broadcast(record *Message, msgs []*Message) []*Reply {
	if record != nil {
		g.paipu.Add(record)
	}
	replies := make([]*Reply, 4)
	var wg sync.WaitGroup
	for l := 0; l < 4; l++ {
		if msgs[l] == nil {
			continue
		}
		wg.Add(1)
		go func(l int) {
			defer wg.Done()
			replies[l] = g.players[g.playerID(l)].Action(msgs[l])
		}(l)
	}
	wg.Wait()
	return replies
}

func (g *Game) kaiju(qijia int) {
	g.qijia = qijia % 4
	g.zhuangfeng = mahjong.Dong
	g.jushu = 0
	g.changbang = 0
	g.lizhibang = 0
	g.defen = make([]int, 4)
	for i := range g.defen {
		g.defen[i] = g.rule.StartingPoints
	}
	switch g.rule.Changshu {
	case 0:
		g.maxJushu = 0
	default:
		g.maxJushu = g.rule.Changshu*4 - 1
	}
	g.paipu = NewPaipu(g.title, g.names, g.qijia)

	msgs := make([]*Message, 4)
	for l := 0; l < 4; l++ {
		msgs[g.seatOf(l)] = &Message{Kaiju: &KaijuMessage{
			ID: l, Rule: g.rule, Title: g.title, Player: g.names, Qijia: g.qijia,
		}}
	}
	g.broadcast(nil, msgs)
}

// seatOf 对局者id对应的本局席位
func (g *Game) seatOf(id int) int {
	return (id - g.qijia - g.jushu + 8) % 4
}

func (g *Game) qipai() {
	if len(g.walls) > 0 {
		g.shan = NewShanWithWall(g.rule, g.walls[0])
		g.walls = g.walls[1:]
	} else {
		g.shan = NewShan(g.rule, g.rng)
	}
	g.shoupai = make([]*mahjong.Shoupai, 4)
	g.he = make([]*mahjong.He, 4)
	qipai := make([][]string, 4)
	for c := 0; c < 13; c++ {
		for l := 0; l < 4; l++ {
			p, _ := g.shan.Zimo()
			qipai[l] = append(qipai[l], p)
		}
	}
	for l := 0; l < 4; l++ {
		g.shoupai[l], _ = mahjong.NewShoupai(qipai[l])
		g.he[l] = mahjong.NewHe()
	}
	g.lunban = -1
	g.diyizimo = true
	g.fengpai = g.rule.Tuzhongliuju
	g.lizhi = make([]int, 4)
	g.yifa = make([]bool, 4)
	g.nGang = make([]int, 4)
	g.nengRong = []bool{true, true, true, true}
	g.lianzhuang = false
	g.lastGangMing = false
	g.lingshangPending = false

	g.paipu.NewJu()
	record := &Message{Qipai: g.qipaiMessage(-1)}
	msgs := make([]*Message, 4)
	for l := 0; l < 4; l++ {
		msgs[l] = &Message{Qipai: g.qipaiMessage(l)}
	}
	g.broadcast(record, msgs)
}

func (g *Game) qipaiMessage(viewer int) *QipaiMessage {
	msg := &QipaiMessage{
		Zhuangfeng: g.zhuangfeng,
		Jushu:      g.jushu,
		Changbang:  g.changbang,
		Lizhibang:  g.lizhibang,
		Defen:      g.seatDefen(),
		Baopai:     g.shan.Baopai()[0],
		Shoupai:    make([]string, 4),
	}
	for l := 0; l < 4; l++ {
		if viewer < 0 || viewer == l {
			msg.Shoupai[l] = g.shoupai[l].String()
		}
	}
	return msg
}

func (g *Game) seatDefen() []int {
	defen := make([]int, 4)
	for l := 0; l < 4; l++ {
		defen[l] = g.defen[g.playerID(l)]
	}
	return defen
}

// playHand 进行一局, 返回 true 表示有人和了
func (g *Game) playHand() bool {
	lingshang := false
	g.lunban = 0
	for {
		l := g.lunban
		var p string
		var err error
		if lingshang {
			p, err = g.shan.Gangzimo()
			if err != nil {
				logrus.WithError(err).Error("gangzimo failed")
				g.pingju("荒牌平局")
				return false
			}
			g.nGang[l]++
			if !g.rule.GangbaopaiDelayed || !g.lastGangMing {
				g.kaigang()
			}
		} else {
			if g.shan.Paishu() == 0 {
				g.pingju("荒牌平局")
				return false
			}
			p, err = g.shan.Zimo()
			if err != nil {
				logrus.WithError(err).Error("zimo failed")
				g.pingju("荒牌平局")
				return false
			}
		}
		g.shoupai[l].Zimo(p, false)

		reply := g.askZimo(l, p, lingshang)
		switch {
		case reply != nil && reply.Daopai == "-" &&
			mahjong.AllowPingju(g.rule, g.shoupai[l], g.diyizimo):
			g.pingju("九種九牌")
			return false
		case reply != nil && reply.Hule == "-" &&
			mahjong.AllowHule(g.rule, g.shoupai[l], "", g.zhuangfeng, l,
				g.situational(l, true, lingshang), true):
			g.processHule([]int{l}, "", lingshang, false)
			return true
		case reply != nil && reply.Gang != "" && g.canGang(l, reply.Gang):
			robbed := g.doGang(l, reply.Gang)
			if robbed {
				return true
			}
			lingshang = true
			continue
		default:
			choice := ""
			if reply != nil {
				choice = reply.Dapai
			}
			done, hule := g.doDapai(l, choice, lingshang)
			if done {
				return hule
			}
			lingshang = g.lingshangPending
			g.lingshangPending = false
		}
	}
}

func (g *Game) askZimo(l int, p string, lingshang bool) *Reply {
	msgSelf := &ZimoMessage{L: l, P: p}
	msgSelf.Dapai = mahjong.GetDapai(g.rule, g.shoupai[l])
	if gang, _ := mahjong.GetGangMianzi(g.rule, g.shoupai[l], "", g.shan.Paishu(), g.totalGang()); len(gang) > 0 {
		msgSelf.Gang = gang
	}
	if lizhi, ok := mahjong.AllowLizhi(g.rule, g.shoupai[l], "", g.shan.Paishu(), g.defen[g.playerID(l)]); ok {
		msgSelf.Lizhi = lizhi
	}
	msgSelf.Hule = mahjong.AllowHule(g.rule, g.shoupai[l], "", g.zhuangfeng, l,
		g.situational(l, true, lingshang), true)
	msgSelf.Pingju = mahjong.AllowPingju(g.rule, g.shoupai[l], g.diyizimo)

	record := &Message{}
	msgs := make([]*Message, 4)
	for i := 0; i < 4; i++ {
		m := &ZimoMessage{L: l}
		if i == l {
			m = msgSelf
		}
		wrapped := &Message{Zimo: m}
		if lingshang {
			wrapped = &Message{Gangzimo: m}
		}
		msgs[i] = wrapped
	}
	if lingshang {
		record.Gangzimo = &ZimoMessage{L: l, P: p}
	} else {
		record.Zimo = &ZimoMessage{L: l, P: p}
	}
	replies := g.broadcast(record, msgs)
	return replies[l]
}

// situational 状况役标志
func (g *Game) situational(l int, zimo, lingshang bool) bool {
	if g.lizhi[l] > 0 {
		return true
	}
	if zimo && (lingshang || g.shan.Paishu() == 0 || g.diyizimo) {
		return true
	}
	if !zimo && g.shan.Paishu() == 0 {
		return true
	}
	return false
}

func (g *Game) totalGang() int {
	n := 0
	for _, c := range g.nGang {
		n += c
	}
	return n
}

func (g *Game) canGang(l int, m string) bool {
	mianzi, err := mahjong.GetGangMianzi(g.rule, g.shoupai[l], "", g.shan.Paishu(), g.totalGang())
	if err != nil {
		return false
	}
	for _, x := range mianzi {
		if x == m {
			return true
		}
	}
	return false
}

// doGang 暗杠/加杠。返回 true 表示被抢杠和了。
func (g *Game) doGang(l int, m string) bool {
	// 连续开杠时先翻开上一杠搁置的宝牌
	g.kaigang()
	if err := g.shoupai[l].Gang(m, true); err != nil {
		logrus.WithField("mianzi", m).WithError(err).Error("illegal gang")
		return false
	}
	g.diyizimo = false
	g.fengpai = false
	for i := range g.yifa {
		g.yifa[i] = false
	}
	kakan := strings.ContainsAny(m, "+=-")
	g.lastGangMing = kakan

	record := &Message{Gang: &FulouMessage{L: l, M: m}}
	msgs := make([]*Message, 4)
	for i := 0; i < 4; i++ {
		fm := &FulouMessage{L: l, M: m}
		if i != l && kakan {
			p := m[:1] + m[len(m)-1:] + g.tagFromTo(l, i)
			fm.Hule = mahjong.AllowHule(g.rule, g.shoupai[i], p, g.zhuangfeng, i,
				true, g.nengRong[i])
		}
		msgs[i] = &Message{Gang: fm}
	}
	replies := g.broadcast(record, msgs)

	if kakan {
		var winners []int
		p := m[:1] + m[len(m)-1:]
		for off := 1; off <= 3; off++ {
			i := (l + off) % 4
			if replies[i] == nil || replies[i].Hule != "-" {
				continue
			}
			if mahjong.AllowHule(g.rule, g.shoupai[i], p+g.tagFromTo(l, i),
				g.zhuangfeng, i, true, g.nengRong[i]) {
				winners = append(winners, i)
			}
		}
		if len(winners) > 0 {
			g.processHule(winners, p, false, true)
			return true
		}
		// 错过抢杠后振听
		for off := 1; off <= 3; off++ {
			i := (l + off) % 4
			if g.canRong(i, p+g.tagFromTo(l, i)) {
				g.nengRong[i] = false
			}
		}
	}
	return false
}

// tagFromTo 打牌者 from 在 to 看来的方位修饰
func (g *Game) tagFromTo(from, to int) string {
	switch (from - to + 4) % 4 {
	case 1:
		return "+"
	case 2:
		return "="
	default:
		return "-"
	}
}

func (g *Game) canRong(l int, p string) bool {
	sp := g.shoupai[l].Clone()
	if sp.Zimo(p[:2], false) != nil {
		return false
	}
	return mahjong.Xiangting(sp) == -1
}

func (g *Game) kaigang() {
	if !g.rule.Gangbaopai {
		return
	}
	baopai, err := g.shan.Kaigang()
	if err != nil {
		return
	}
	record := &Message{Kaigang: &KaigangMessage{Baopai: baopai}}
	msgs := make([]*Message, 4)
	for i := 0; i < 4; i++ {
		msgs[i] = &Message{Kaigang: &KaigangMessage{Baopai: baopai}}
	}
	g.broadcast(record, msgs)
}

// doDapai 打牌与鸣牌仲裁。返回 (本局是否结束, 是否和了)。
func (g *Game) doDapai(l int, choice string, afterGang bool) (bool, bool) {
	dapai := mahjong.GetDapai(g.rule, g.shoupai[l])
	lizhiDeclared := strings.HasSuffix(choice, "*") && g.lizhi[l] == 0
	trimmed := strings.TrimSuffix(choice, "*")
	mogiri := strings.HasSuffix(trimmed, "_")
	base := strings.TrimSuffix(trimmed, "_")
	valid := false
	for _, p := range dapai {
		if p == base || strings.TrimSuffix(p, "_") == base {
			valid = true
			break
		}
	}
	if lizhiDeclared {
		if _, ok := mahjong.AllowLizhi(g.rule, g.shoupai[l], base,
			g.shan.Paishu(), g.defen[g.playerID(l)]); !ok {
			lizhiDeclared = false
		}
	}
	if !valid {
		if choice != "" {
			logrus.WithField("dapai", choice).Error("illegal dapai, tsumogiri instead")
		}
		choice = dapai[len(dapai)-1]
		lizhiDeclared = false
		mogiri = strings.HasSuffix(choice, "_")
		base = strings.TrimSuffix(choice, "_")
	}

	p := base
	if mogiri {
		p += "_"
	}
	if lizhiDeclared {
		p += "*"
	}
	if err := g.shoupai[l].Dapai(p, true); err != nil {
		logrus.WithError(err).Error("dapai failed")
		return true, false
	}
	if err := g.he[l].Dapai(p); err != nil {
		logrus.WithField("dapai", p).WithError(err).Error("he dapai failed")
	}

	if lizhiDeclared {
		g.yifa[l] = true
	} else {
		g.yifa[l] = false
	}
	// 打牌后重新判定自家振听; 立直后只会变坏不会解除
	if g.lizhi[l] == 0 {
		g.nengRong[l] = true
	}
	for _, t := range mahjong.Tingpai(g.shoupai[l]) {
		if g.he[l].Find(t) {
			g.nengRong[l] = false
		}
	}

	// 明杠的杠宝牌在打牌后翻开
	if afterGang && g.rule.GangbaopaiDelayed && g.lastGangMing {
		g.kaigang()
		g.lastGangMing = false
	}

	record := &Message{Dapai: &DapaiMessage{L: l, P: p}}
	msgs := make([]*Message, 4)
	for i := 0; i < 4; i++ {
		dm := &DapaiMessage{L: l, P: p}
		if i != l {
			pd := base[:2] + g.tagFromTo(l, i)
			if chi, _ := mahjong.GetChiMianzi(g.rule, g.shoupai[i], pd, g.shan.Paishu()); len(chi) > 0 {
				dm.Chi = chi
			}
			if peng, _ := mahjong.GetPengMianzi(g.rule, g.shoupai[i], pd, g.shan.Paishu()); len(peng) > 0 {
				dm.Peng = peng
			}
			if gang, _ := mahjong.GetGangMianzi(g.rule, g.shoupai[i], pd, g.shan.Paishu(), g.totalGang()); len(gang) > 0 {
				dm.Gang = gang
			}
			dm.Hule = mahjong.AllowHule(g.rule, g.shoupai[i], pd, g.zhuangfeng, i,
				g.situational(i, false, false), g.nengRong[i])
		}
		msgs[i] = &Message{Dapai: dm}
	}
	replies := g.broadcast(record, msgs)

	// 荣和优先
	var winners []int
	for off := 1; off <= 3; off++ {
		i := (l + off) % 4
		pd := base[:2] + g.tagFromTo(l, i)
		if replies[i] != nil && replies[i].Hule == "-" &&
			mahjong.AllowHule(g.rule, g.shoupai[i], pd, g.zhuangfeng, i,
				g.situational(i, false, false), g.nengRong[i]) {
			winners = append(winners, i)
		}
	}
	if len(winners) == 3 && g.rule.MaxSimultaneousHule < 3 {
		g.pingju("三家和")
		return true, false
	}
	if len(winners) > 0 {
		if len(winners) > g.rule.MaxSimultaneousHule {
			winners = winners[:g.rule.MaxSimultaneousHule]
		}
		g.processHule(winners, base, false, false)
		return true, true
	}

	// 见逃的席位进入振听
	for off := 1; off <= 3; off++ {
		i := (l + off) % 4
		if g.canRong(i, base[:2]+g.tagFromTo(l, i)) {
			g.nengRong[i] = false
		}
	}

	// 立直成立
	if lizhiDeclared {
		if g.diyizimo {
			g.lizhi[l] = 2
		} else {
			g.lizhi[l] = 1
		}
		g.defen[g.playerID(l)] -= 1000
		g.lizhibang++
		if g.lizhi[0] > 0 && g.lizhi[1] > 0 && g.lizhi[2] > 0 && g.lizhi[3] > 0 &&
			g.rule.Tuzhongliuju {
			g.pingju("四家立直")
			return true, false
		}
	}

	// 鸣牌仲裁: 杠/碰优先于吃, 近者优先
	caller, meld := -1, ""
	for off := 1; off <= 3; off++ {
		i := (l + off) % 4
		r := replies[i]
		if r == nil || g.lizhi[i] > 0 {
			continue
		}
		pd := base[:2] + g.tagFromTo(l, i)
		if r.Gang != "" {
			gang, err := mahjong.GetGangMianzi(g.rule, g.shoupai[i], pd, g.shan.Paishu(), g.totalGang())
			if err == nil && contains(gang, r.Gang) {
				caller, meld = i, r.Gang
				break
			}
		}
		if r.Fulou != "" {
			peng, err := mahjong.GetPengMianzi(g.rule, g.shoupai[i], pd, g.shan.Paishu())
			if err == nil && contains(peng, r.Fulou) {
				caller, meld = i, r.Fulou
				break
			}
		}
	}
	if caller < 0 {
		// 吃只能来自上家打出的牌
		i := (l + 1) % 4
		if r := replies[i]; r != nil && r.Fulou != "" && g.lizhi[i] == 0 {
			pd := base[:2] + "-"
			if chi, _ := mahjong.GetChiMianzi(g.rule, g.shoupai[i], pd, g.shan.Paishu()); contains(chi, r.Fulou) {
				caller, meld = i, r.Fulou
			}
		}
	}
	if caller >= 0 {
		return g.doFulou(caller, l, meld)
	}

	// 四开杠: 打牌无人鸣且非一家四杠时流局
	if g.totalGang() == 4 && g.maxSeatGang() < 4 && g.rule.Tuzhongliuju {
		g.pingju("四開槓")
		return true, false
	}

	// 四风连打: 第一巡四家连打同一风牌
	if g.fengpai {
		if !g.diyizimo || base[0] != 'z' || base[1] > '4' {
			g.fengpai = false
		} else if first := g.he[0].Pai(); len(first) > 0 && first[0][:2] != base[:2] {
			g.fengpai = false
		} else if l == 3 {
			g.pingju("四風連打")
			return true, false
		}
	}
	if l == 3 {
		g.diyizimo = false
	}

	if g.shan.Paishu() == 0 {
		g.pingju("荒牌平局")
		return true, false
	}
	g.lunban = (l + 1) % 4
	return false, false
}

func contains(list []string, x string) bool {
	for _, v := range list {
		if v == x {
			return true
		}
	}
	return false
}

func (g *Game) maxSeatGang() int {
	max := 0
	for _, c := range g.nGang {
		if c > max {
			max = c
		}
	}
	return max
}

// doFulou 吃/碰/大明杠。返回 (本局是否结束, 是否和了)。
func (g *Game) doFulou(caller, discarder int, m string) (bool, bool) {
	if err := g.he[discarder].Fulou(m); err != nil {
		logrus.WithError(err).Error("he fulou failed")
	}
	if err := g.shoupai[caller].FulouMianzi(m, true); err != nil {
		logrus.WithError(err).Error("shoupai fulou failed")
		return true, false
	}
	g.diyizimo = false
	g.fengpai = false
	for i := range g.yifa {
		g.yifa[i] = false
	}

	digits := 0
	for i := 1; i < len(m); i++ {
		if m[i] >= '0' && m[i] <= '9' {
			digits++
		}
	}
	daming := digits == 4

	record := &Message{Fulou: &FulouMessage{L: caller, M: m}}
	msgs := make([]*Message, 4)
	for i := 0; i < 4; i++ {
		fm := &FulouMessage{L: caller, M: m}
		if i == caller && !daming {
			fm.Dapai = mahjong.GetDapai(g.rule, g.shoupai[caller])
		}
		msgs[i] = &Message{Fulou: fm}
	}
	replies := g.broadcast(record, msgs)

	g.lunban = caller
	if daming {
		g.lastGangMing = true
		g.lingshangPending = true
		return false, false
	}
	choice := ""
	if replies[caller] != nil {
		choice = replies[caller].Dapai
	}
	return g.doDapai(caller, choice, false)
}

// processHule 依次结算和了。多家和时供托与场棒归最近的和了者。
func (g *Game) processHule(winners []int, rongpai string, lingshang, qianggang bool) {
	for idx, l := range winners {
		param := &mahjong.HuleParam{
			Rule:       g.rule,
			Zhuangfeng: g.zhuangfeng,
			Menfeng:    l,
			Baopai:     g.shan.Baopai(),
		}
		param.Hupai.Lizhi = g.lizhi[l]
		if g.rule.Yifa && g.yifa[l] {
			param.Hupai.Yifa = true
		}
		param.Hupai.Qianggang = qianggang
		if rongpai == "" {
			param.Hupai.Lingshang = lingshang
			if g.shan.Paishu() == 0 && !lingshang {
				param.Hupai.Haidi = 1
			}
			if g.diyizimo {
				if l == 0 {
					param.Hupai.Tianhu = 1
				} else {
					param.Hupai.Tianhu = 2
				}
			}
		} else if g.shan.Paishu() == 0 {
			param.Hupai.Haidi = 2
		}
		if g.lizhi[l] > 0 {
			param.Fubaopai = g.shan.Close().Fubaopai()
		}
		if idx == 0 {
			param.Jicun = mahjong.Jicun{Changbang: g.changbang, Lizhibang: g.lizhibang}
		}

		var rp string
		if rongpai != "" {
			rp = rongpai[:2] + g.tagFromTo(g.lunban, l)
		}
		result, err := mahjong.Hule(g.shoupai[l], rp, param)
		if err != nil {
			logrus.WithError(err).Error("hule failed")
			continue
		}
		if idx == 0 {
			g.lizhibang = 0
		}
		for i := 0; i < 4; i++ {
			g.defen[g.playerID(i)] += result.Fenpei[i]
		}
		if l == 0 && g.rule.LianzhuangFangshi > 0 {
			g.lianzhuang = true
		}

		baojia := -1
		if rp != "" {
			baojia = g.lunban
		}
		hm := &HuleMessage{
			L:         l,
			Shoupai:   g.shoupai[l].String(),
			Baojia:    baojia,
			Fubaopai:  param.Fubaopai,
			Fu:        result.Fu,
			Fanshu:    result.Fanshu,
			Damanguan: result.Damanguan,
			Defen:     result.Defen,
			Hupai:     result.Hupai,
			Fenpei:    result.Fenpei,
		}
		record := &Message{Hule: hm}
		msgs := make([]*Message, 4)
		for i := 0; i < 4; i++ {
			msgs[i] = &Message{Hule: hm}
		}
		g.broadcast(record, msgs)
	}
}

// pingju 流局。荒牌平局时进行流局满贯与不听罚符的结算。
func (g *Game) pingju(name string) {
	fenpei := make([]int, 4)
	shoupai := make([]string, 4)

	if name == "荒牌平局" {
		// 流局满贯
		if g.rule.LiujuManguan {
			for l := 0; l < 4; l++ {
				if !g.nagashiManguan(l) {
					continue
				}
				name = "流し満貫"
				for i := 0; i < 4; i++ {
					switch {
					case i == l:
						if l == 0 {
							fenpei[i] += 12000
						} else {
							fenpei[i] += 8000
						}
					case i == 0 || l == 0:
						fenpei[i] -= 4000
					default:
						fenpei[i] -= 2000
					}
				}
			}
		}
		var tingpai []int
		for l := 0; l < 4; l++ {
			sp := g.shoupai[l]
			if mahjong.Xiangting(sp) == 0 && len(mahjong.Tingpai(sp)) > 0 {
				tingpai = append(tingpai, l)
				shoupai[l] = sp.String()
				if l == 0 && g.rule.LianzhuangFangshi == 2 {
					g.lianzhuang = true
				}
			}
		}
		if g.rule.LianzhuangFangshi == 3 {
			g.lianzhuang = true
		}
		if name == "荒牌平局" && g.rule.NotingFa &&
			len(tingpai) > 0 && len(tingpai) < 4 {
			pay := 3000 / (4 - len(tingpai))
			get := 3000 / len(tingpai)
			for l := 0; l < 4; l++ {
				if contains2(tingpai, l) {
					fenpei[l] += get
				} else {
					fenpei[l] -= pay
				}
			}
		}
	} else {
		// 途中流局全部连庄
		g.lianzhuang = true
		if name == "九種九牌" {
			shoupai[g.lunban] = g.shoupai[g.lunban].String()
		}
		if name == "三家和" {
			for l := 0; l < 4; l++ {
				shoupai[l] = g.shoupai[l].String()
			}
		}
	}

	for i := 0; i < 4; i++ {
		g.defen[g.playerID(i)] += fenpei[i]
	}

	pm := &PingjuMessage{Name: name, Shoupai: shoupai, Fenpei: fenpei}
	record := &Message{Pingju: pm}
	msgs := make([]*Message, 4)
	for i := 0; i < 4; i++ {
		msgs[i] = &Message{Pingju: pm}
	}
	g.broadcast(record, msgs)
}

func contains2(list []int, x int) bool {
	for _, v := range list {
		if v == x {
			return true
		}
	}
	return false
}

// nagashiManguan 流局满贯: 舍牌全为幺九且未被鸣
func (g *Game) nagashiManguan(l int) bool {
	pai := g.he[l].Pai()
	if len(pai) == 0 {
		return false
	}
	for _, p := range pai {
		if strings.ContainsAny(p, "+=-") {
			return false
		}
		if !mahjong.IsYaopai(mahjong.PaiFace(p)) {
			return false
		}
	}
	return true
}

// last 一局结束后的推进, 返回 true 表示终局
func (g *Game) last(hule bool) bool {
	if hule {
		if g.lianzhuang {
			g.changbang++
		} else {
			g.changbang = 0
		}
	} else {
		g.changbang++
	}

	if !g.lianzhuang {
		g.jushu++
		if g.jushu == 4 {
			g.jushu = 0
			g.zhuangfeng++
		}
	}

	if g.rule.TobiEnd {
		for _, d := range g.defen {
			if d < 0 {
				return true
			}
		}
	}

	top, topDefen := g.topPlayer()
	sum := g.zhuangfeng*4 + g.jushu
	if g.suddenDeath && topDefen >= 30000 {
		return true
	}
	if sum > g.maxJushu {
		if g.rule.ExtensionFangshi > 0 && topDefen < 30000 && sum <= 15 {
			g.suddenDeath = true
			return false
		}
		return true
	}
	// 和了止め: 全终局且庄家为首位时结束
	if sum == g.maxJushu && g.lianzhuang && g.rule.AgariYame &&
		top == g.playerID(0) {
		return true
	}
	return false
}

func (g *Game) topPlayer() (int, int) {
	top, topDefen := -1, -1
	for off := 0; off < 4; off++ {
		id := (g.qijia + off) % 4
		if g.defen[id] > topDefen {
			top, topDefen = id, g.defen[id]
		}
	}
	return top, topDefen
}

// jieju 终局结算: 顺位与得点
func (g *Game) jieju() {
	ids := []int{0, 1, 2, 3}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			a, b := ids[i], ids[j]
			ra := (a - g.qijia + 4) % 4
			rb := (b - g.qijia + 4) % 4
			if g.defen[b] > g.defen[a] ||
				g.defen[b] == g.defen[a] && rb < ra {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}
	rank := make([]int, 4)
	point := make([]string, 4)
	total := 0.0
	for r := 1; r < 4; r++ {
		id := ids[r]
		rank[id] = r + 1
		p := float64(g.defen[id]-30000) / 1000
		if rp, err := strconv.ParseFloat(g.rule.RankPoints[r], 64); err == nil {
			p += rp
		}
		point[id] = strconv.FormatFloat(p, 'f', 1, 64)
		total += p
	}
	rank[ids[0]] = 1
	point[ids[0]] = strconv.FormatFloat(-total, 'f', 1, 64)

	g.paipu.Defen = append([]int(nil), g.defen...)
	g.paipu.Rank = rank
	g.paipu.Point = point

	msgs := make([]*Message, 4)
	for i := 0; i < 4; i++ {
		msgs[i] = &Message{Jieju: g.paipu}
	}
	g.broadcast(nil, msgs)
}
