package mahjong

import "testing"

func TestValidPai(t *testing.T) {
	valid := []string{"m1", "p5", "s0", "z7", "m5_", "p5*", "s5_*", "m1+", "z1=", "s9-", "m0_*+"}
	for _, p := range valid {
		if _, ok := ValidPai(p); !ok {
			t.Errorf("ValidPai(%q) = false, want true", p)
		}
	}
	invalid := []string{"", "m", "x5", "z0", "z8", "m10", "m5*_", "m5+*"}
	for _, p := range invalid {
		if _, ok := ValidPai(p); ok {
			t.Errorf("ValidPai(%q) = true, want false", p)
		}
	}
}

func TestPaiFace(t *testing.T) {
	cases := map[string]string{
		"m1":   "m1",
		"s0":   "s5",
		"m5_*": "m5",
		"p0+":  "p5",
	}
	for in, want := range cases {
		if got := PaiFace(in); got != want {
			t.Errorf("PaiFace(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNextPai(t *testing.T) {
	cases := map[string]string{
		"m1": "m2",
		"m9": "m1",
		"p0": "p6",
		"z1": "z2",
		"z4": "z1",
		"z5": "z6",
		"z7": "z5",
	}
	for in, want := range cases {
		if got := NextPai(in); got != want {
			t.Errorf("NextPai(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsYaopai(t *testing.T) {
	for _, p := range []string{"m1", "m9", "s1", "z1", "z5", "z7"} {
		if !IsYaopai(p) {
			t.Errorf("IsYaopai(%q) = false, want true", p)
		}
	}
	for _, p := range []string{"m2", "p5", "s8"} {
		if IsYaopai(p) {
			t.Errorf("IsYaopai(%q) = true, want false", p)
		}
	}
}
