package obfuscate

import "errors"

var (
	ErrInvalidEncoding = errors.New("invalid base64 payload")
	ErrInvalidText     = errors.New("decoded payload is not valid text")
)
