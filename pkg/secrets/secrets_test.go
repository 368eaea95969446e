package secrets_test

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WassimBlilita7/ULMA/pkg/secrets"
)

func newSealer(t *testing.T, scope string) (*secrets.Sealer, []byte) {
	t.Helper()
	key, err := secrets.GenerateKey()
	require.NoError(t, err)
	s, err := secrets.New(key, scope)
	require.NoError(t, err)
	return s, key
}

func TestSealOpenString(t *testing.T) {
	t.Parallel()

	s, _ := newSealer(t, "ulma:store")

	tests := []struct {
		name      string
		plaintext string
	}{
		{"empty string", ""},
		{"token", "eyJhbGciOiJIUzI1NiJ9.payload.sig"},
		{"json", `{"id":42,"email":"lecteur@univ.fr","role":"student"}`},
		{"unicode", "Bibliothèque 世界 📚"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ct, err := s.SealString(tt.plaintext)
			require.NoError(t, err)
			if tt.plaintext != "" {
				assert.NotContains(t, ct, tt.plaintext)
			}

			got, err := s.OpenString(ct)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestSealIsNonDeterministic(t *testing.T) {
	t.Parallel()

	s, _ := newSealer(t, "scope")
	a, err := s.SealString("same")
	require.NoError(t, err)
	b, err := s.SealString("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestScopesAreIsolated(t *testing.T) {
	t.Parallel()

	key, err := secrets.GenerateKey()
	require.NoError(t, err)

	a, err := secrets.New(key, "library")
	require.NoError(t, err)
	b, err := secrets.New(key, "admin")
	require.NoError(t, err)

	ct, err := a.SealString("secret")
	require.NoError(t, err)

	_, err = b.OpenString(ct)
	require.ErrorIs(t, err, secrets.ErrDecryptionFailed)
}

func TestOpenRejectsTampering(t *testing.T) {
	t.Parallel()

	s, _ := newSealer(t, "scope")
	sealed, err := s.Seal([]byte("payload"))
	require.NoError(t, err)

	tampered := bytes.Clone(sealed)
	tampered[len(tampered)-1] ^= 0x01
	_, err = s.Open(tampered)
	require.ErrorIs(t, err, secrets.ErrDecryptionFailed)

	_, err = s.Open(sealed[:5])
	require.ErrorIs(t, err, secrets.ErrInvalidCiphertext)

	_, err = s.OpenString("%%%")
	require.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
}

func TestNewRejectsBadKey(t *testing.T) {
	t.Parallel()

	for _, key := range [][]byte{nil, make([]byte, 16), make([]byte, 33)} {
		_, err := secrets.New(key, "scope")
		require.ErrorIs(t, err, secrets.ErrInvalidKey)
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	key, err := secrets.GenerateKey()
	require.NoError(t, err)

	fromHex, err := secrets.ParseKey(hex.EncodeToString(key))
	require.NoError(t, err)
	assert.Equal(t, key, fromHex)

	fromB64, err := secrets.ParseKey(base64.StdEncoding.EncodeToString(key))
	require.NoError(t, err)
	assert.Equal(t, key, fromB64)

	_, err = secrets.ParseKey("too-short")
	require.ErrorIs(t, err, secrets.ErrInvalidKey)

	_, err = secrets.ParseKey(base64.StdEncoding.EncodeToString([]byte("short")))
	require.ErrorIs(t, err, secrets.ErrInvalidKey)

	s, err := secrets.GenerateKeyString()
	require.NoError(t, err)
	assert.Len(t, s, secrets.KeySize*2)
}
