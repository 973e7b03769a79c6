package random

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomString(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		length  int
		want    int
	}{
		{name: "zero length", charset: "abc", length: 0, want: 0},
		{name: "negative length", charset: "abc", length: -1, want: 0},
		{name: "empty charset", charset: "", length: 8, want: 0},
		{name: "digits", charset: "0123456789", length: 16, want: 16},
		{name: "multibyte", charset: "äöü", length: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateRandomString(tt.charset, tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.want, utf8.RuneCountInString(got))
			for _, r := range got {
				assert.True(t, strings.ContainsRune(tt.charset, r), "rune %q outside charset", r)
			}
		})
	}
}

func TestGenerateRandomString_CoversCharset(t *testing.T) {
	got, err := GenerateRandomString("ab", 256)
	require.NoError(t, err)
	assert.Contains(t, got, "a")
	assert.Contains(t, got, "b")
}
