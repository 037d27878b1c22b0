package bookingcode

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Format(t *testing.T) {
	g := NewGenerator("rnt")

	code := g.Generate()

	assert.Regexp(t, regexp.MustCompile(`^RNT-[0-9A-F]{8}$`), code)
}

func TestGenerate_DefaultPrefix(t *testing.T) {
	assert.Equal(t, DefaultPrefix, NewGenerator("  ").Prefix())
}

func TestGenerate_Unique(t *testing.T) {
	g := NewGenerator("RNT")
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		code := g.Generate()
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}
