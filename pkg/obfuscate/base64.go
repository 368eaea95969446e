package obfuscate

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"unicode/utf8"
)

// EncodeBase64 encodes the UTF-8 bytes of s with standard padded Base64.
func EncodeBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// EncodeValue encodes strings directly and any other value as its JSON form.
func EncodeValue(v any) (string, error) {
	if s, ok := v.(string); ok {
		return EncodeBase64(s), nil
	}

	s, err := Stringify(v)
	if err != nil {
		return "", err
	}
	return EncodeBase64(s), nil
}

// DecodeBase64 reverses EncodeBase64. It fails with ErrInvalidEncoding on
// malformed Base64 and ErrInvalidText when the bytes are not valid UTF-8.
func DecodeBase64(encoded string) (string, error) {
	raw, err := decodeBase64Bytes(encoded)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidText
	}
	return string(raw), nil
}

// Stringify renders v as compact JSON without HTML escaping, matching what a
// browser's JSON.stringify produces for the same data.
func Stringify(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

func decodeBase64Bytes(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrInvalidEncoding, err)
	}
	return raw, nil
}
