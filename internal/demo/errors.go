package demo

import "errors"

var (
	ErrUnknownBackend = errors.New("unknown store backend")
	ErrUnknownCodec   = errors.New("unknown store codec")
	ErrMissingSecret  = errors.New("STORE_SECRET_KEY is required for the sealed codec")
)
