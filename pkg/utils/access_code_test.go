package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNanoCodeGenerator(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-Z]{5}$`)
	gen := NewNanoCodeGenerator(0)

	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 190)
}

func TestNanoCodeGeneratorLength(t *testing.T) {
	code, err := NewNanoCodeGenerator(8).Generate()
	require.NoError(t, err)
	assert.Len(t, code, 8)
}

func TestNormalizeAccessCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ab12c", "AB12C"},
		{"  AB12C\n", "AB12C"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeAccessCode(tt.in), "input %q", tt.in)
	}
}
