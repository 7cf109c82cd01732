package mahjong

import (
	"errors"
	"testing"
)

func TestHeDapai(t *testing.T) {
	h := NewHe()
	if err := h.Dapai("m1"); err != nil {
		t.Fatalf("dapai: %v", err)
	}
	if err := h.Dapai("s5_*"); err != nil {
		t.Fatalf("dapai with modifiers: %v", err)
	}
	if err := h.Dapai("m1+"); !errors.Is(err, ErrParse) {
		t.Errorf("dapai with fulou tag: err = %v, want ErrParse", err)
	}
	pai := h.Pai()
	if len(pai) != 2 || pai[0] != "m1" || pai[1] != "s5_*" {
		t.Errorf("Pai() = %v", pai)
	}
}

func TestHeFulou(t *testing.T) {
	h := NewHe()
	h.Dapai("s0")
	if err := h.Fulou("s5550+"); err != nil {
		t.Fatalf("fulou: %v", err)
	}
	if pai := h.Pai(); pai[0] != "s0+" {
		t.Errorf("after fulou pai[0] = %q, want s0+", pai[0])
	}

	h = NewHe()
	h.Dapai("m4")
	if err := h.Fulou("m456-"); !errors.Is(err, ErrIllegalMianzi) {
		t.Errorf("fulou of mismatched pai: err = %v, want ErrIllegalMianzi", err)
	}
	if err := h.Fulou("m4-56"); err != nil {
		t.Fatalf("fulou: %v", err)
	}
}

func TestHeFind(t *testing.T) {
	h := NewHe()
	h.Dapai("m0")
	if !h.Find("m5") {
		t.Error("Find(m5) = false after discarding m0")
	}
	if !h.Find("m0") {
		t.Error("Find(m0) = false")
	}
	if h.Find("m4") {
		t.Error("Find(m4) = true")
	}
}
