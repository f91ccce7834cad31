package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSheetName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Plain Channel", "Plain Channel"},
		{"a/b\\c", "a_b_c"},
		{"what? *why*", "what_ _why_"},
		{"[bracketed]:name", "_bracketed__name"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeSheetName(tc.in), "input %q", tc.in)
	}
}

func TestSanitizeSheetName_Truncates(t *testing.T) {
	long := strings.Repeat("x", 40)
	got := SanitizeSheetName(long)
	assert.Len(t, got, maxSheetNameLen)

	// Truncation counts runes, not bytes.
	wide := strings.Repeat("チ", 40)
	gotWide := SanitizeSheetName(wide)
	assert.Len(t, []rune(gotWide), maxSheetNameLen)
}
