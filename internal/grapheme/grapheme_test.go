package grapheme

import "testing"

func TestSplit(t *testing.T) {
	text := "éa🇺🇸"
	got := Split(text)
	if len(got) != 3 {
		t.Fatalf("Split(%q)=%q, want 3 clusters", text, got)
	}
	if Split("") != nil {
		t.Fatalf("Split(\"\") must be nil")
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "abc", want: 3},
		{text: "日本", want: 4},
		{text: "a\tb", want: 6},
		{text: "é", want: 1},
	}
	for _, tc := range cases {
		if got := Width(tc.text, 4); got != tc.want {
			t.Fatalf("Width(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	if got := Placeholder("日x", '*', 4); got != "***" {
		t.Fatalf("Placeholder=%q, want %q", got, "***")
	}
	if got := Placeholder("", '*', 4); got != "" {
		t.Fatalf("empty Placeholder=%q", got)
	}
}
