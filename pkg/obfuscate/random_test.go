package obfuscate_test

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WassimBlilita7/ULMA/pkg/obfuscate"
)

var (
	uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	hexRe  = regexp.MustCompile(`^[0-9a-f]+$`)
)

func TestGenerateID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := obfuscate.GenerateID()
		assert.Regexp(t, uuidV4, id)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestGenerateSecureToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"default for zero", 0, 64},
		{"default for negative", -3, 64},
		{"custom", 16, 32},
		{"single byte", 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tok := obfuscate.GenerateSecureToken(tt.n)
			assert.Len(t, tok, tt.want)
			assert.Regexp(t, hexRe, tok)
		})
	}

	assert.NotEqual(t, obfuscate.GenerateSecureToken(32), obfuscate.GenerateSecureToken(32))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy unavailable") }

func TestTokenGeneratorSource(t *testing.T) {
	t.Parallel()

	t.Run("deterministic source", func(t *testing.T) {
		t.Parallel()
		g := &obfuscate.TokenGenerator{Source: bytes.NewReader([]byte{0x00, 0x0f, 0xab, 0xff})}
		assert.Equal(t, "000fabff", g.Token(4))
	})

	t.Run("falls back when source fails", func(t *testing.T) {
		t.Parallel()
		g := &obfuscate.TokenGenerator{Source: failingReader{}}
		tok := g.Token(8)
		assert.Len(t, tok, 16)
		assert.Regexp(t, hexRe, tok)
		assert.Regexp(t, uuidV4, g.ID())
	})

	t.Run("nil source uses system randomness", func(t *testing.T) {
		t.Parallel()
		var g obfuscate.TokenGenerator
		assert.Len(t, g.Token(4), 8)
	})
}
