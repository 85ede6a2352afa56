package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLStripper_StripHTML(t *testing.T) {
	s := NewHTMLStripper()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Shoes", "Shoes"},
		{"tags removed", "<b>Shoes</b>", "Shoes"},
		{"script dropped", "Shoes<script>alert(1)</script>", "Shoes"},
		{"entities decoded", "Shoes &amp; Boots", "Shoes & Boots"},
		{"whitespace trimmed", "  Hats  ", "Hats"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.StripHTML(tt.in))
		})
	}
}
