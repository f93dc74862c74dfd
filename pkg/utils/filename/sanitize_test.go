package filename

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Summer Promo", 0, "Summer-Promo"},
		{"  a/b\\c:d  ", 0, "a-b-c-d"},
		{"..hidden..", 0, "hidden"},
		{"x -- y", 0, "x-y"},
		{"abcdef", 3, "abc"},
		{"", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Sanitize(tt.in, tt.max))
		})
	}
}

func TestSanitize_TruncatesOnRuneBoundary(t *testing.T) {
	got := Sanitize(strings.Repeat("é", 10), 5)
	require.True(t, utf8.ValidString(got))
	require.Equal(t, "éé", got)
}

func TestDescriptor(t *testing.T) {
	require.Equal(t, "Poster-v2.json", Descriptor("Poster v2"))
	require.Equal(t, "descriptor.json", Descriptor("///"))
}
