package obfuscate

// DefaultKey is the public key used by Cipher and Decipher.
const DefaultKey = "ULMA_LIBRARY_KEY"

// Blob is XOR-obfuscated, Base64-encoded text as persisted on the client.
// A Blob is not encrypted: it hides nothing from anyone who reads this code.
type Blob string

// XOR obfuscates text by XOR-ing its UTF-16 code units with a repeating key.
// Applying the same key twice restores the input.
type XOR struct {
	key []uint16
}

// NewXOR returns an XOR obfuscator for key. An empty key selects DefaultKey.
func NewXOR(key string) XOR {
	if key == "" {
		key = DefaultKey
	}
	return XOR{key: stringUnits(key)}
}

// Cipher obfuscates s. Every non-empty input yields a Blob different from s.
func (x XOR) Cipher(s string) Blob {
	return Blob(EncodeBase64(string(encodeUnits(x.apply(stringUnits(s))))))
}

// Decipher restores the text obfuscated by Cipher with the same key.
func (x XOR) Decipher(b Blob) (string, error) {
	raw, err := decodeBase64Bytes(string(b))
	if err != nil {
		return "", err
	}

	units, err := decodeUnits(raw)
	if err != nil {
		return "", err
	}

	return unitsString(x.apply(units)), nil
}

func (x XOR) apply(units []uint16) []uint16 {
	key := x.key
	if len(key) == 0 {
		key = defaultXOR.key
	}
	for i := range units {
		units[i] ^= key[i%len(key)]
	}
	return units
}

var defaultXOR = NewXOR(DefaultKey)

// Cipher obfuscates s with DefaultKey.
func Cipher(s string) Blob {
	return defaultXOR.Cipher(s)
}

// Decipher reverses Cipher.
func Decipher(b Blob) (string, error) {
	return defaultXOR.Decipher(b)
}
