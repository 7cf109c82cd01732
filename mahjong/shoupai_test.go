package mahjong

import (
	"errors"
	"strings"
	"testing"
)

func TestParseShoupaiString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"m123456789p12355", "m123456789p1235p5"},
		{"m0555p123456789", "m0555p123456789"},
		{"m0555p123456789z1", "m0555p123456789z1"},
		{"m123p456s789z1122m0", "m123p456s789z1122m0"},
		{"m123p456s789z11223*", "m123p456s789z1122z3*"},
		{"m123p456z11,s7-89,", "m123p456z11,s7-89,"},
		{"m123p456s789z2,m1-23", "m123p456s789z2,m1-23"},
	}
	for _, c := range cases {
		sp, err := ParseShoupai(c.in)
		if err != nil {
			t.Fatalf("ParseShoupai(%q): %v", c.in, err)
		}
		if got := sp.String(); got != c.want {
			t.Errorf("ParseShoupai(%q).String() = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseShoupaiError(t *testing.T) {
	if _, err := ParseShoupai("m11111p2345678s99"); !errors.Is(err, ErrOverflow) {
		t.Errorf("5th identical pai: err = %v, want ErrOverflow", err)
	}
	if _, err := ParseShoupai("x123"); !errors.Is(err, ErrParse) {
		t.Errorf("bad notation: err = %v, want ErrParse", err)
	}
}

func TestZimoDapai(t *testing.T) {
	sp, _ := ParseShoupai("m123p456s789z1122")
	if err := sp.Dapai("m1", true); !errors.Is(err, ErrUnderflow) {
		t.Errorf("dapai before zimo: err = %v, want ErrUnderflow", err)
	}
	if err := sp.Zimo("z3", true); err != nil {
		t.Fatalf("zimo: %v", err)
	}
	if err := sp.Zimo("z4", true); !errors.Is(err, ErrOverflow) {
		t.Errorf("double zimo: err = %v, want ErrOverflow", err)
	}
	if err := sp.Dapai("s1", true); !errors.Is(err, ErrNotInHand) {
		t.Errorf("dapai of absent pai: err = %v, want ErrNotInHand", err)
	}
	if err := sp.Dapai("z3_", true); err != nil {
		t.Fatalf("tsumogiri: %v", err)
	}
	if got := sp.String(); got != "m123p456s789z1122" {
		t.Errorf("after tsumogiri: %q", got)
	}
}

func TestDapaiLizhi(t *testing.T) {
	sp, _ := ParseShoupai("m123456p789s2355s4")
	if err := sp.Dapai("s4_*", true); err != nil {
		t.Fatalf("lizhi dapai: %v", err)
	}
	if !sp.Lizhi() {
		t.Error("Lizhi() = false after declaration")
	}
	sp.Zimo("z1", true)
	dapai := sp.GetDapai(true)
	if len(dapai) != 1 || dapai[0] != "z1_" {
		t.Errorf("dapai after lizhi = %v, want [z1_]", dapai)
	}
}

func TestFulouKuikae(t *testing.T) {
	sp, _ := ParseShoupai("m1123456p456s789")
	if err := sp.FulouMianzi("m1-23", true); err != nil {
		t.Fatalf("fulou: %v", err)
	}
	dapai := sp.GetDapai(true)
	for _, p := range dapai {
		if p == "m1" || p == "m4" {
			t.Errorf("kuikae pai %q allowed after chi", p)
		}
	}

	rule := NewRule()
	rule.KuikaeLevel = 1
	dapai = GetDapai(rule, sp)
	found4 := false
	for _, p := range dapai {
		if p == "m1" {
			t.Error("claimed pai allowed at kuikae level 1")
		}
		if p == "m4" {
			found4 = true
		}
	}
	if !found4 {
		t.Error("suji pai denied at kuikae level 1")
	}

	rule.KuikaeLevel = 2
	dapai = GetDapai(rule, sp)
	found1 := false
	for _, p := range dapai {
		if p == "m1" {
			found1 = true
		}
	}
	if !found1 {
		t.Error("claimed pai denied at kuikae level 2")
	}
}

func TestGetChiMianziHongpai(t *testing.T) {
	sp, _ := ParseShoupai("m0456p123s789z112")
	mianzi, err := sp.GetChiMianzi("m7-", false)
	if err != nil {
		t.Fatalf("GetChiMianzi: %v", err)
	}
	want := []string{"m567-", "m067-"}
	if strings.Join(mianzi, " ") != strings.Join(want, " ") {
		t.Errorf("GetChiMianzi = %v, want %v", mianzi, want)
	}

	if mianzi, _ := sp.GetChiMianzi("z1-", false); len(mianzi) != 0 {
		t.Errorf("chi of zipai = %v, want empty", mianzi)
	}
	if mianzi, _ := sp.GetChiMianzi("m7+", false); len(mianzi) != 0 {
		t.Errorf("chi from non-kamicha = %v, want empty", mianzi)
	}
}

func TestGetPengMianziHongpai(t *testing.T) {
	sp, _ := ParseShoupai("m0055p123s789z112")
	mianzi, err := sp.GetPengMianzi("m5+")
	if err != nil {
		t.Fatalf("GetPengMianzi: %v", err)
	}
	want := []string{"m555+", "m505+", "m005+"}
	if strings.Join(mianzi, " ") != strings.Join(want, " ") {
		t.Errorf("GetPengMianzi = %v, want %v", mianzi, want)
	}
}

func TestGetGangMianzi(t *testing.T) {
	// 大明杠
	sp, _ := ParseShoupai("m555p123s789z1122")
	mianzi, err := sp.GetGangMianzi("m5=")
	if err != nil {
		t.Fatalf("GetGangMianzi: %v", err)
	}
	if len(mianzi) != 1 || mianzi[0] != "m5555=" {
		t.Errorf("daminggang = %v, want [m5555=]", mianzi)
	}

	// 暗杠
	sp, _ = ParseShoupai("m111p456s789z1122m1")
	mianzi, _ = sp.GetGangMianzi("")
	if len(mianzi) != 1 || mianzi[0] != "m1111" {
		t.Errorf("angang = %v, want [m1111]", mianzi)
	}
	if err := sp.Gang("m1111", true); err != nil {
		t.Fatalf("gang: %v", err)
	}
	if got := sp.String(); got != "p456s789z1122,m1111" {
		t.Errorf("after angang: %q", got)
	}

	// 加杠
	sp, _ = ParseShoupai("m1p456s789z111m5,m555=")
	mianzi, _ = sp.GetGangMianzi("")
	if len(mianzi) != 1 || mianzi[0] != "m555=5" {
		t.Errorf("jiagang = %v, want [m555=5]", mianzi)
	}
	if err := sp.Gang("m555=5", true); err != nil {
		t.Fatalf("jiagang: %v", err)
	}
	if got := sp.Fulou()[0]; got != "m555=5" {
		t.Errorf("fulou after jiagang = %q", got)
	}
}

func TestGetGangMianziLizhi(t *testing.T) {
	sp, _ := ParseShoupai("m111p456s789z1122*")
	sp.Zimo("m1", true)
	mianzi, _ := sp.GetGangMianzi("")
	if len(mianzi) != 1 || mianzi[0] != "m1111" {
		t.Errorf("angang of zimo pai after lizhi = %v, want [m1111]", mianzi)
	}

	sp, _ = ParseShoupai("m1111p456s789z122*")
	sp.Zimo("z3", true)
	mianzi, _ = sp.GetGangMianzi("")
	if len(mianzi) != 0 {
		t.Errorf("angang of non-zimo pai after lizhi = %v, want empty", mianzi)
	}
}

func TestMenqian(t *testing.T) {
	sp, _ := ParseShoupai("m123p456s789z2,m1-23")
	if sp.Menqian() {
		t.Error("Menqian() = true with chi")
	}
	sp, _ = ParseShoupai("p456s789z1122,m1111")
	if !sp.Menqian() {
		t.Error("Menqian() = false with angang")
	}
}
