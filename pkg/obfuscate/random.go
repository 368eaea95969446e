package obfuscate

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"
	mrand "math/rand/v2"

	"github.com/google/uuid"
)

// DefaultTokenLength is the number of random bytes used when a caller asks
// for a non-positive token length.
const DefaultTokenLength = 32

// TokenGenerator produces random tokens and identifiers from Source. When the
// source fails it falls back to math/rand/v2, which is NOT cryptographically
// secure.
type TokenGenerator struct {
	Source io.Reader
}

// NewTokenGenerator returns a generator reading from crypto/rand.
func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{Source: rand.Reader}
}

// Token returns 2*n lowercase hex characters. n <= 0 selects DefaultTokenLength.
func (g *TokenGenerator) Token(n int) string {
	if n <= 0 {
		n = DefaultTokenLength
	}
	buf := make([]byte, n)
	g.fill(buf)
	return hex.EncodeToString(buf)
}

// ID returns a random UUID v4 string.
func (g *TokenGenerator) ID() string {
	id, err := uuid.NewRandomFromReader(g.source())
	if err != nil {
		id, _ = uuid.NewRandomFromReader(weakReader{})
	}
	return id.String()
}

func (g *TokenGenerator) fill(buf []byte) {
	if _, err := io.ReadFull(g.source(), buf); err != nil {
		_, _ = weakReader{}.Read(buf)
	}
}

func (g *TokenGenerator) source() io.Reader {
	if g == nil || g.Source == nil {
		return rand.Reader
	}
	return g.Source
}

// weakReader fills buffers from math/rand/v2.
type weakReader struct{}

func (weakReader) Read(p []byte) (int, error) {
	var word [8]byte
	for i := 0; i < len(p); i += len(word) {
		binary.LittleEndian.PutUint64(word[:], mrand.Uint64())
		copy(p[i:], word[:])
	}
	return len(p), nil
}

var defaultGenerator = NewTokenGenerator()

// GenerateID returns a random UUID v4 string.
func GenerateID() string {
	return defaultGenerator.ID()
}

// GenerateSecureToken returns n random bytes as lowercase hex.
func GenerateSecureToken(n int) string {
	return defaultGenerator.Token(n)
}
