package documents

import "testing"

func TestCountWords(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"a b  c", 3},
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"tabs\tand\nnewlines too", 4},
	}
	for _, tc := range cases {
		if got := CountWords(tc.text); got != tc.want {
			t.Errorf("CountWords(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestCountLines(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"a\nb\nc", 3},
		{"", 1},
		{"a\r\nb", 2},
		{"trailing\n", 2},
		{"no newline", 1},
	}
	for _, tc := range cases {
		if got := CountLines(tc.text); got != tc.want {
			t.Errorf("CountLines(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestCountChars(t *testing.T) {
	if got := CountChars("héllo"); got != 5 {
		t.Errorf("CountChars(héllo) = %d, want 5", got)
	}
}
