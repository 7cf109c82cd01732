package mahjong

import (
	"strings"
	"testing"
)

func TestXiangting(t *testing.T) {
	cases := []struct {
		paistr string
		want   int
	}{
		{"m123p456s789z11122", -1},
		{"m123p456s789z1122", 0},
		{"m123p456s789z1234", 2},
		{"m1133p5577s99z1122", -1},
		{"m1133p5577s99z112", 0},
		{"m19p19s19z1234567", 0},
		{"m119p19s19z123456", 0},
		{"m123p456s78z11,s1-23", 0},
		{"m123p456s789z11,s7-89,", -1},
	}
	for _, c := range cases {
		sp, err := ParseShoupai(c.paistr)
		if err != nil {
			t.Fatalf("ParseShoupai(%q): %v", c.paistr, err)
		}
		if got := Xiangting(sp); got != c.want {
			t.Errorf("Xiangting(%q) = %d, want %d", c.paistr, got, c.want)
		}
	}
}

func TestXiangtingQidui(t *testing.T) {
	sp, _ := ParseShoupai("m1133p5577s99z112")
	if got := XiangtingQidui(sp); got != 0 {
		t.Errorf("XiangtingQidui = %d, want 0", got)
	}
	// 副露后七对不成立
	sp, _ = ParseShoupai("m1133p5577s9,z111+")
	if got := XiangtingQidui(sp); got != xiangtingMax {
		t.Errorf("XiangtingQidui with fulou = %d, want %d", got, xiangtingMax)
	}
	// 同种四枚只算一对, 且牌种不足时补数
	sp, _ = ParseShoupai("m1111p5577s99z112")
	if got := XiangtingQidui(sp); got != 2 {
		t.Errorf("XiangtingQidui with quad = %d, want 2", got)
	}
}

func TestXiangtingLoop(t *testing.T) {
	// 和了形摸打一轮后向听数不变
	sp, _ := ParseShoupai("m123p456s789z1122")
	if err := sp.Zimo("z3", true); err != nil {
		t.Fatal(err)
	}
	if err := sp.Dapai("z3_", true); err != nil {
		t.Fatal(err)
	}
	if got := Xiangting(sp); got != 0 {
		t.Errorf("Xiangting after zimo/dapai = %d, want 0", got)
	}
}

func TestTingpai(t *testing.T) {
	sp, _ := ParseShoupai("m123p456s78z11,s1-23")
	got := Tingpai(sp)
	if strings.Join(got, " ") != "s6 s9" {
		t.Errorf("Tingpai = %v, want [s6 s9]", got)
	}

	sp, _ = ParseShoupai("m19p19s19z1234567")
	got = Tingpai(sp)
	if len(got) != 13 {
		t.Errorf("guoshi 13-men Tingpai = %v, want all 13 yaojiu", got)
	}

	// 摸牌后为多牌, 不计算
	sp, _ = ParseShoupai("m123p456s789z1122z3")
	if got := Tingpai(sp); got != nil {
		t.Errorf("Tingpai with zimo = %v, want nil", got)
	}
}
