package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// Sealer encrypts and authenticates values for a single scope. It is safe for
// concurrent use.
type Sealer struct {
	aead  cipher.AEAD
	nonce io.Reader
}

// New builds a Sealer for scope from a 32-byte master key.
func New(masterKey []byte, scope string) (*Sealer, error) {
	if err := ValidateKey(masterKey); err != nil {
		return nil, err
	}

	key, err := deriveKey(masterKey, scope)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	return &Sealer{aead: aead, nonce: rand.Reader}, nil
}

// Seal returns nonce || ciphertext || tag. Every call uses a fresh nonce, so
// sealing the same input twice yields different output.
func (s *Sealer) Seal(data []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(data)+s.aead.Overhead())
	if _, err := io.ReadFull(s.nonce, nonce); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return s.aead.Seal(nonce, nonce, data, nil), nil
}

// Open reverses Seal. Tampered or foreign payloads fail with
// ErrDecryptionFailed.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	size := s.aead.NonceSize()
	if len(sealed) < size+s.aead.Overhead() {
		return nil, ErrInvalidCiphertext
	}

	plain, err := s.aead.Open(nil, sealed[:size], sealed[size:], nil)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return plain, nil
}

// SealString seals plaintext and encodes the result as Base64.
func (s *Sealer) SealString(plaintext string) (string, error) {
	sealed, err := s.Seal([]byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenString reverses SealString.
func (s *Sealer) OpenString(encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}

	plain, err := s.Open(sealed)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
