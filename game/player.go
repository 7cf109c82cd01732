package game

// Player 对局者。引擎对每个事件调用 Action, 需要行动时消息中带有
// 合法手段列表, 返回 nil 或空应答表示放弃。
type Player interface {
	Action(msg *Message) *Reply
}

// BotPlayer 最简对局者: 能和则和, 能立直则立直, 否则摸切, 从不鸣牌。
type BotPlayer struct{}

func NewBotPlayer() *BotPlayer {
	return &BotPlayer{}
}

func (b *BotPlayer) Action(msg *Message) *Reply {
	switch {
	case msg.Zimo != nil:
		return b.onZimo(msg.Zimo)
	case msg.Gangzimo != nil:
		return b.onZimo(msg.Gangzimo)
	case msg.Dapai != nil:
		if msg.Dapai.Hule {
			return &Reply{Hule: "-"}
		}
	case msg.Fulou != nil:
		if len(msg.Fulou.Dapai) > 0 {
			return &Reply{Dapai: msg.Fulou.Dapai[0]}
		}
	case msg.Gang != nil:
		if msg.Gang.Hule {
			return &Reply{Hule: "-"}
		}
	}
	return nil
}

func (b *BotPlayer) onZimo(msg *ZimoMessage) *Reply {
	if msg.Hule {
		return &Reply{Hule: "-"}
	}
	if len(msg.Lizhi) > 0 {
		return &Reply{Dapai: msg.Lizhi[0] + "*"}
	}
	if len(msg.Dapai) > 0 {
		// 摸切候补在末位
		return &Reply{Dapai: msg.Dapai[len(msg.Dapai)-1]}
	}
	return nil
}
