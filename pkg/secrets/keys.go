package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required master key size (AES-256).
	KeySize = 32

	// hkdfInfo separates keys derived here from any other use of the master key.
	hkdfInfo = "ulma-secrets-v1"
)

// ValidateKey reports whether key has the required length.
func ValidateKey(key []byte) error {
	if len(key) != KeySize {
		return ErrInvalidKey
	}
	return nil
}

// ParseKey decodes a master key given as 64 hex characters or standard
// Base64, the two forms GenerateKeyString and most secret managers produce.
func ParseKey(s string) ([]byte, error) {
	if key, err := hex.DecodeString(s); err == nil && len(key) == KeySize {
		return key, nil
	}
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidKey, err)
	}
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateKey returns a new random master key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateKeyString returns a new random master key as hex.
func GenerateKeyString() (string, error) {
	key, err := GenerateKey()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

// deriveKey mixes scope into master with HKDF-SHA-256. The caller must clear
// the returned slice once the cipher is built.
func deriveKey(master []byte, scope string) ([]byte, error) {
	r := hkdf.New(sha256.New, master, []byte(scope), []byte(hkdfInfo))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
