package game

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Paipu 牌谱。Log 按局保存全部真实消息, 可完整复盘一战。
type Paipu struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Player []string     `json:"player"`
	Qijia  int          `json:"qijia"`
	Log    [][]*Message `json:"log"`
	Defen  []int        `json:"defen"`
	Rank   []int        `json:"rank"`
	Point  []string     `json:"point"`
}

func NewPaipu(title string, player []string, qijia int) *Paipu {
	return &Paipu{
		ID:     uuid.NewString(),
		Title:  title,
		Player: append([]string(nil), player...),
		Qijia:  qijia,
	}
}

// NewJu 开始新的一局
func (p *Paipu) NewJu() {
	p.Log = append(p.Log, []*Message{})
}

// Add 追加一条记录到当前局
func (p *Paipu) Add(msg *Message) {
	if len(p.Log) == 0 {
		p.NewJu()
	}
	p.Log[len(p.Log)-1] = append(p.Log[len(p.Log)-1], msg)
}

// Marshal 序列化为 JSON
func (p *Paipu) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// ParsePaipu 解析牌谱 JSON
func ParsePaipu(data []byte) (*Paipu, error) {
	paipu := new(Paipu)
	if err := json.Unmarshal(data, paipu); err != nil {
		return nil, err
	}
	return paipu, nil
}
