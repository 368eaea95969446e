package redis

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultScanBatchSize = 500

// Storage is a key-value backend on top of a Redis client. All keys live
// under a common prefix so that several applications can share a database
// and Clear removes only this application's items.
type Storage struct {
	db            redis.UniversalClient
	prefix        string
	ttl           time.Duration
	scanBatchSize int64
}

// NewStorage wraps client with the given key prefix, no expiry and the default
// scan batch size.
func NewStorage(client redis.UniversalClient, prefix string) *Storage {
	return &Storage{
		db:            client,
		prefix:        prefix,
		scanBatchSize: defaultScanBatchSize,
	}
}

// NewStorageWithConfig takes prefix, item TTL and scan batch size from cfg.
func NewStorageWithConfig(client redis.UniversalClient, cfg Config) *Storage {
	s := NewStorage(client, cfg.KeyPrefix)
	s.ttl = cfg.ItemTTL
	if cfg.ScanBatchSize > 0 {
		s.scanBatchSize = cfg.ScanBatchSize
	}
	return s
}

// GetItem reports ok=false when the key does not exist.
func (s *Storage) GetItem(ctx context.Context, key string) (string, bool, error) {
	val, err := s.db.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(ErrStorage, err)
	}
	return val, true, nil
}

func (s *Storage) SetItem(ctx context.Context, key, value string) error {
	if err := s.db.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	if err := s.db.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

// Clear deletes every key under the prefix. Keys are collected with a full
// SCAN first and deleted afterwards in batches, since deleting while the
// cursor moves can skip keys. With an empty prefix it empties the whole
// database.
func (s *Storage) Clear(ctx context.Context) error {
	var keys []string
	if err := s.scan(ctx, func(batch []string) error {
		keys = append(keys, batch...)
		return nil
	}); err != nil {
		return err
	}

	for chunk := range slices.Chunk(keys, int(s.scanBatchSize)) {
		if err := s.db.Del(ctx, chunk...).Err(); err != nil {
			return errors.Join(ErrStorage, err)
		}
	}
	return nil
}

// Keys returns the stored keys with the prefix removed.
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.scan(ctx, func(batch []string) error {
		for _, k := range batch {
			keys = append(keys, strings.TrimPrefix(k, s.prefix))
		}
		return nil
	})
	return keys, err
}

// Close terminates the Redis connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Conn returns the underlying Redis client.
func (s *Storage) Conn() redis.UniversalClient {
	return s.db
}

func (s *Storage) scan(ctx context.Context, fn func(batch []string) error) error {
	pattern := escapePattern(s.prefix) + "*"

	var cursor uint64
	for {
		batch, next, err := s.db.Scan(ctx, cursor, pattern, s.scanBatchSize).Result()
		if err != nil {
			return errors.Join(ErrStorage, err)
		}
		if len(batch) > 0 {
			if err := fn(batch); err != nil {
				return errors.Join(ErrStorage, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

var patternEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// escapePattern quotes glob metacharacters for SCAN MATCH.
func escapePattern(s string) string {
	return patternEscaper.Replace(s)
}
