package util

import (
	"reflect"
	"testing"
)

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"only spaces", "    ", 10, nil},
		{"fits on one line", "lorem ipsum", 20, []string{"lorem ipsum"}},
		{"breaks late", "lorem ipsum dolor sit amet", 12, []string{"lorem ipsum", "dolor sit", "amet"}},
		{"break at exact width", "aaaa bbbb", 4, []string{"aaaa", "bbbb"}},
		{"overlong word unbroken", "incomprehensibilities yes", 5, []string{"incomprehensibilities", "yes"}},
		{"leading spaces skipped", "   lorem ipsum", 20, []string{"lorem ipsum"}},
		{"multiple spaces collapse at break", "lorem   ipsum", 5, []string{"lorem", "ipsum"}},
		{"width zero emits word per line", "a b c", 0, []string{"a", "b", "c"}},
		{"single word", "lorem", 2, []string{"lorem"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordWrap(tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WordWrap(%q, %d) = %q; want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
