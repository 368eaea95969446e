package securestore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/WassimBlilita7/ULMA/pkg/logger"
	"github.com/WassimBlilita7/ULMA/pkg/obfuscate"
)

// Store encodes values with a Codec before handing them to a Backend.
type Store struct {
	backend Backend
	codec   Codec
	logger  *slog.Logger
}

type Option func(*Store)

// WithCodec replaces the default XOR obfuscation codec. Nil is ignored.
func WithCodec(c Codec) Option {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithLogger sets the logger used to report failures. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New wraps backend. Without options values are XOR-obfuscated with
// obfuscate.DefaultKey and failures are not logged.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		codec:   NewXORCodec(obfuscate.DefaultKey),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("securestore"))
	return s
}

// Set stores value under key. Strings are stored verbatim, anything else is
// JSON-encoded first.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	if key == "" {
		return ErrEmptyKey
	}

	plain, ok := value.(string)
	if !ok {
		var err error
		if plain, err = obfuscate.Stringify(value); err != nil {
			return s.fail(ctx, key, ErrEncode, err)
		}
	}

	encoded, err := s.codec.Encode(plain)
	if err != nil {
		return s.fail(ctx, key, ErrEncode, err)
	}

	if err := s.backend.SetItem(ctx, key, encoded); err != nil {
		return s.fail(ctx, key, ErrBackend, err)
	}
	return nil
}

// Get returns the stored value: the JSON-decoded form when the plaintext is
// valid JSON (objects as map[string]any, numbers as float64), otherwise the
// plaintext string.
func (s *Store) Get(ctx context.Context, key string) (any, error) {
	plain, err := s.GetString(ctx, key)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal([]byte(plain), &v); err == nil {
		return v, nil
	}
	return plain, nil
}

// GetString returns the decoded plaintext without JSON interpretation.
func (s *Store) GetString(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	raw, ok, err := s.backend.GetItem(ctx, key)
	if err != nil {
		return "", s.fail(ctx, key, ErrBackend, err)
	}
	if !ok {
		return "", ErrNotFound
	}

	plain, err := s.codec.Decode(raw)
	if err != nil {
		return "", s.fail(ctx, key, ErrCorrupted, err)
	}
	return plain, nil
}

// GetInto decodes the stored JSON into dst. A *string destination also
// accepts plaintext that is not JSON.
func (s *Store) GetInto(ctx context.Context, key string, dst any) error {
	plain, err := s.GetString(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(plain), dst); err != nil {
		if sp, ok := dst.(*string); ok {
			*sp = plain
			return nil
		}
		return s.fail(ctx, key, ErrDecode, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.backend.RemoveItem(ctx, key); err != nil {
		return s.fail(ctx, key, ErrBackend, err)
	}
	return nil
}

// Clear removes every item the backend owns.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Clear(ctx); err != nil {
		return s.fail(ctx, "", ErrBackend, err)
	}
	return nil
}

func (s *Store) fail(ctx context.Context, key string, kind, err error) error {
	level := slog.LevelError
	if errors.Is(kind, ErrCorrupted) || errors.Is(kind, ErrDecode) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, kind.Error(), logger.Key(key), logger.Error(err))
	return errors.Join(kind, err)
}
