package game

import "testing"

func TestNickname(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"earther", "earther"},
		{"player one", "playerone"},
		{"tab\tand\nnewline", "tabandnewl"},
		{"averyverylongname", "averyveryl"},
		{"<<>>", ""},
		{"dot.dash-ok", "dot.dash-o"},
	}

	for _, c := range cases {
		if got := Nickname(c.in); got != c.want {
			t.Errorf("Nickname(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
