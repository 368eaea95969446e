package securestore

import (
	"github.com/WassimBlilita7/ULMA/pkg/obfuscate"
	"github.com/WassimBlilita7/ULMA/pkg/secrets"
)

// Codec turns plaintext into the representation written to a Backend.
type Codec interface {
	Encode(plaintext string) (string, error)
	Decode(encoded string) (string, error)
}

// XORCodec obfuscates values with a public XOR key. It is NOT encryption.
type XORCodec struct {
	xor obfuscate.XOR
}

// NewXORCodec returns a codec using key, or obfuscate.DefaultKey when key is
// empty.
func NewXORCodec(key string) XORCodec {
	return XORCodec{xor: obfuscate.NewXOR(key)}
}

func (c XORCodec) Encode(plaintext string) (string, error) {
	return string(c.xor.Cipher(plaintext)), nil
}

func (c XORCodec) Decode(encoded string) (string, error) {
	return c.xor.Decipher(obfuscate.Blob(encoded))
}

// SealedCodec encrypts values with AES-256-GCM.
type SealedCodec struct {
	sealer *secrets.Sealer
}

// NewSealedCodec derives a sealing key for scope from a 32-byte master key.
func NewSealedCodec(masterKey []byte, scope string) (*SealedCodec, error) {
	s, err := secrets.New(masterKey, scope)
	if err != nil {
		return nil, err
	}
	return &SealedCodec{sealer: s}, nil
}

func (c *SealedCodec) Encode(plaintext string) (string, error) {
	return c.sealer.SealString(plaintext)
}

func (c *SealedCodec) Decode(encoded string) (string, error) {
	return c.sealer.OpenString(encoded)
}
