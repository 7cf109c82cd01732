package mahjong

import (
	"errors"
	"reflect"
	"testing"
)

func hupaiNames(r *HuleResult) []string {
	names := make([]string, 0, len(r.Hupai))
	for _, h := range r.Hupai {
		names = append(names, h.Name)
	}
	return names
}

func TestHulePinfuZimo(t *testing.T) {
	sp, err := ParseShoupai("m123456p789s2355s4")
	if err != nil {
		t.Fatal(err)
	}
	r, err := Hule(sp, "", &HuleParam{Menfeng: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"門前清自摸和", "平和"}
	if !reflect.DeepEqual(hupaiNames(r), want) {
		t.Errorf("Hupai = %v, want %v", hupaiNames(r), want)
	}
	if r.Fu != 20 || r.Fanshu != 2 {
		t.Errorf("Fu/Fanshu = %d/%d, want 20/2", r.Fu, r.Fanshu)
	}
	if r.Defen != 1500 {
		t.Errorf("Defen = %d, want 1500", r.Defen)
	}
	if !reflect.DeepEqual(r.Fenpei, []int{-700, 1500, -400, -400}) {
		t.Errorf("Fenpei = %v", r.Fenpei)
	}
}

func TestHuleQiduiRong(t *testing.T) {
	sp, _ := ParseShoupai("m2255p4466s188z33")
	r, err := Hule(sp, "s1+", &HuleParam{
		Menfeng: 2,
		Jicun:   Jicun{Changbang: 2, Lizhibang: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(hupaiNames(r), []string{"七対子"}) {
		t.Errorf("Hupai = %v", hupaiNames(r))
	}
	if r.Fu != 25 || r.Fanshu != 2 || r.Defen != 1600 {
		t.Errorf("Fu/Fanshu/Defen = %d/%d/%d, want 25/2/1600", r.Fu, r.Fanshu, r.Defen)
	}
	// 供托与本场计入收支
	if !reflect.DeepEqual(r.Fenpei, []int{0, 0, 3200, -2200}) {
		t.Errorf("Fenpei = %v", r.Fenpei)
	}
}

func TestHuleGuoshiShisanmen(t *testing.T) {
	sp, _ := ParseShoupai("m19p19s19z1234567m1")
	r, err := Hule(sp, "", &HuleParam{Menfeng: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(hupaiNames(r), []string{"国士無双十三面"}) {
		t.Errorf("Hupai = %v", hupaiNames(r))
	}
	if r.Damanguan != 2 || r.Defen != 64000 {
		t.Errorf("Damanguan/Defen = %d/%d, want 2/64000", r.Damanguan, r.Defen)
	}
	if !reflect.DeepEqual(r.Fenpei, []int{-32000, 64000, -16000, -16000}) {
		t.Errorf("Fenpei = %v", r.Fenpei)
	}
}

func TestHuleDasanyuanBao(t *testing.T) {
	sp, _ := ParseShoupai("m2234,z555+,z666=,z777-")
	r, err := Hule(sp, "m5=", &HuleParam{Menfeng: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := []Hupai{{Name: "大三元", Damanguan: 1, Baojia: "-"}}
	if !reflect.DeepEqual(r.Hupai, want) {
		t.Errorf("Hupai = %v, want %v", r.Hupai, want)
	}
	if r.Defen != 32000 {
		t.Errorf("Defen = %d, want 32000", r.Defen)
	}
	// 荣和时包家与放铳家各付一半
	if !reflect.DeepEqual(r.Fenpei, []int{-16000, 32000, 0, -16000}) {
		t.Errorf("Fenpei = %v", r.Fenpei)
	}
}

func TestHuleLizhiBaopai(t *testing.T) {
	sp, _ := ParseShoupai("m123456p789s2350s4")
	r, err := Hule(sp, "", &HuleParam{
		Menfeng:  2,
		Hupai:    HupaiFlag{Lizhi: 1},
		Baopai:   []string{"s1"},
		Fubaopai: []string{"m9"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"立直", "門前清自摸和", "平和", "ドラ", "赤ドラ", "裏ドラ"}
	if !reflect.DeepEqual(hupaiNames(r), want) {
		t.Errorf("Hupai = %v, want %v", hupaiNames(r), want)
	}
	if r.Fanshu != 6 || r.Defen != 12000 {
		t.Errorf("Fanshu/Defen = %d/%d, want 6/12000", r.Fanshu, r.Defen)
	}
}

func TestHuleWuyi(t *testing.T) {
	sp, _ := ParseShoupai("m123456p234s79z33")
	// 宝牌不是役, 无役不和
	_, err := Hule(sp, "s8=", &HuleParam{Menfeng: 1, Baopai: []string{"s7"}})
	if !errors.Is(err, ErrNotAWin) {
		t.Fatalf("err = %v, want ErrNotAWin", err)
	}

	r, err := Hule(sp, "s8=", &HuleParam{
		Menfeng: 1,
		Hupai:   HupaiFlag{Qianggang: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(hupaiNames(r), []string{"槍槓"}) {
		t.Errorf("Hupai = %v", hupaiNames(r))
	}
	if r.Fu != 40 || r.Fanshu != 1 || r.Defen != 1300 {
		t.Errorf("Fu/Fanshu/Defen = %d/%d/%d, want 40/1/1300", r.Fu, r.Fanshu, r.Defen)
	}
}
