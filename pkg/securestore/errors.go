package securestore

import "errors"

var (
	ErrNotFound  = errors.New("securestore: key not found")
	ErrCorrupted = errors.New("securestore: stored value cannot be decoded")
	ErrEncode    = errors.New("securestore: value cannot be encoded")
	ErrDecode    = errors.New("securestore: stored value does not fit destination")
	ErrBackend   = errors.New("securestore: backend failure")
	ErrEmptyKey  = errors.New("securestore: empty key")
)
