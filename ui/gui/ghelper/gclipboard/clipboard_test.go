package gclipboard

import "testing"

func TestFirstLine(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"  \n\t\n":          "",
		"8/8/8/8 w - - 0 1": "8/8/8/8 w - - 0 1",
		"\n  7k/P7/8/8/8/8/8/K7 w - - 0 1  \r\nsecond": "7k/P7/8/8/8/8/8/K7 w - - 0 1",
	}
	for in, want := range cases {
		if got := FirstLine(in); got != want {
			t.Errorf("%q: got %q want %q", in, got, want)
		}
	}
}
