package lang

import (
	"schack/src/base"
	"testing"
)

func TestDictionariesHaveSameKeys(t *testing.T) {
	en, err := NewGUILangWorker(EN)
	if err != nil {
		t.Fatal(err)
	}
	ru, err := NewGUILangWorker(RU)
	if err != nil {
		t.Fatal(err)
	}
	for k := range en.dict {
		if _, ok := ru.dict[k]; !ok {
			t.Errorf("ru misses %s", k)
		}
	}
	for k := range ru.dict {
		if _, ok := en.dict[k]; !ok {
			t.Errorf("en misses %s", k)
		}
	}
}

func TestStatusLine(t *testing.T) {
	lw, err := NewGUILangWorker(EN)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		status base.GameStatus
		white  bool
		want   string
	}{
		{base.Ongoing, true, "Game is ongoing. White to move"},
		{base.Check, false, "Game is in check. Black to move"},
		{base.Checkmate, true, "Game is checkmate."},
		{base.Stalemate, false, "Game is stalemate."},
		{base.Draw, true, "Game is drawn."},
		{base.InvalidGame, true, "No game."},
	}
	for _, c := range cases {
		if got := lw.StatusLine(c.status, c.white); got != c.want {
			t.Errorf("%v: got %q want %q", c.status, got, c.want)
		}
	}
}

func TestMissingKeyEchoes(t *testing.T) {
	lw, err := NewGUILangWorker(LangFromString("ru"))
	if err != nil {
		t.Fatal(err)
	}
	if lw.GetLang() != RU {
		t.Fatal("expected RU")
	}
	if got := lw.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("got %q", got)
	}
	if LangFromString("sv") != EN {
		t.Fatal("unknown language falls back to EN")
	}
}
