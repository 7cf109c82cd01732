package game

import "testing"

func TestPaipuRoundTrip(t *testing.T) {
	p := NewPaipu("test", []string{"a", "b", "c", "d"}, 2)
	p.NewJu()
	p.Add(&Message{Pingju: &PingjuMessage{Name: "九種九牌"}})
	p.Defen = []int{25000, 25000, 25000, 25000}

	data, err := p.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	q, err := ParsePaipu(data)
	if err != nil {
		t.Fatal(err)
	}
	if q.ID != p.ID || q.Qijia != 2 || len(q.Log) != 1 {
		t.Errorf("round trip mismatch: %+v", q)
	}
	if q.Log[0][0].Pingju == nil || q.Log[0][0].Pingju.Name != "九種九牌" {
		t.Errorf("log entry lost: %+v", q.Log[0][0])
	}
}
