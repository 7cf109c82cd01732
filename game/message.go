package game

import "github.com/kevin-chtw/tw_riichi/mahjong"

// 对局消息。每条消息只有一个字段非空, 作为牌谱记录时保存真实信息,
// 发给对局者时手牌与牌山信息按视角屏蔽。

type Message struct {
	Kaiju    *KaijuMessage  `json:"kaiju,omitempty"`
	Qipai    *QipaiMessage  `json:"qipai,omitempty"`
	Zimo     *ZimoMessage   `json:"zimo,omitempty"`
	Dapai    *DapaiMessage  `json:"dapai,omitempty"`
	Fulou    *FulouMessage  `json:"fulou,omitempty"`
	Gang     *FulouMessage  `json:"gang,omitempty"`
	Gangzimo *ZimoMessage   `json:"gangzimo,omitempty"`
	Kaigang  *KaigangMessage `json:"kaigang,omitempty"`
	Hule     *HuleMessage   `json:"hule,omitempty"`
	Pingju   *PingjuMessage `json:"pingju,omitempty"`
	Jieju    *Paipu         `json:"jieju,omitempty"`
}

type KaijuMessage struct {
	ID     int            `json:"id"` // 该对局者的席位
	Rule   *mahjong.Rule  `json:"rule"`
	Title  string         `json:"title"`
	Player []string       `json:"player"`
	Qijia  int            `json:"qijia"`
}

type QipaiMessage struct {
	Zhuangfeng int      `json:"zhuangfeng"`
	Jushu      int      `json:"jushu"`
	Changbang  int      `json:"changbang"`
	Lizhibang  int      `json:"lizhibang"`
	Defen      []int    `json:"defen"`
	Baopai     string   `json:"baopai"`
	Shoupai    []string `json:"shoupai"`
}

type ZimoMessage struct {
	L int    `json:"l"`
	P string `json:"p"`

	// 以下仅发给行动席位, 列举合法手段
	Dapai  []string `json:"dapai,omitempty"`
	Gang   []string `json:"gang,omitempty"`
	Lizhi  []string `json:"lizhi,omitempty"`
	Hule   bool     `json:"hule,omitempty"`
	Pingju bool     `json:"pingju,omitempty"`
}

type DapaiMessage struct {
	L int    `json:"l"`
	P string `json:"p"`

	// 以下按接收席位列举可执行的鸣牌/和了
	Chi  []string `json:"chi,omitempty"`
	Peng []string `json:"peng,omitempty"`
	Gang []string `json:"gang,omitempty"`
	Hule bool     `json:"hule,omitempty"`
}

type FulouMessage struct {
	L int    `json:"l"`
	M string `json:"m"`

	Dapai []string `json:"dapai,omitempty"`
	Hule  bool     `json:"hule,omitempty"`
}

type KaigangMessage struct {
	Baopai string `json:"baopai"`
}

type HuleMessage struct {
	L         int             `json:"l"`
	Shoupai   string          `json:"shoupai"`
	Baojia    int             `json:"baojia"` // 放铳家, 自摸为 -1
	Fubaopai  []string        `json:"fubaopai,omitempty"`
	Fu        int             `json:"fu,omitempty"`
	Fanshu    int             `json:"fanshu,omitempty"`
	Damanguan int             `json:"damanguan,omitempty"`
	Defen     int             `json:"defen"`
	Hupai     []mahjong.Hupai `json:"hupai"`
	Fenpei    []int           `json:"fenpei"`
}

type PingjuMessage struct {
	Name    string   `json:"name"`
	Shoupai []string `json:"shoupai"`
	Fenpei  []int    `json:"fenpei"`
}

// Reply 对局者的应答。空应答表示放弃行动。
type Reply struct {
	Dapai  string `json:"dapai,omitempty"`
	Fulou  string `json:"fulou,omitempty"`
	Gang   string `json:"gang,omitempty"`
	Hule   string `json:"hule,omitempty"`   // "-" 表示和了
	Daopai string `json:"daopai,omitempty"` // "-" 表示九种九牌/倒牌宣言
}
