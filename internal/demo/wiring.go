package demo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/WassimBlilita7/ULMA/pkg/config"
	"github.com/WassimBlilita7/ULMA/pkg/environment"
	"github.com/WassimBlilita7/ULMA/pkg/logger"
	"github.com/WassimBlilita7/ULMA/pkg/redis"
	"github.com/WassimBlilita7/ULMA/pkg/secrets"
	"github.com/WassimBlilita7/ULMA/pkg/securestore"
)

// OpenBackend builds the backend selected by cfg.StoreBackend. The returned
// close function releases connections and is never nil.
func OpenBackend(ctx context.Context, cfg Config, log *slog.Logger) (securestore.Backend, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(cfg.StoreBackend) {
	case BackendMemory, "":
		return securestore.NewMemoryBackend(), noop, nil

	case BackendFile:
		b, err := securestore.NewFileBackend(cfg.StoreFilePath)
		if err != nil {
			return nil, noop, err
		}
		return b, noop, nil

	case BackendRedis:
		var rcfg redis.Config
		if err := config.Load(&rcfg); err != nil {
			return nil, noop, err
		}
		if cfg.StoreKeyPrefix != "" {
			rcfg.KeyPrefix = cfg.StoreKeyPrefix
		}

		client, err := redis.Connect(ctx, rcfg)
		if err != nil {
			return nil, noop, err
		}
		if err := redis.Healthcheck(client)(ctx); err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		log.InfoContext(ctx, "connected to redis", logger.Backend(BackendRedis))
		return redis.NewStorageWithConfig(client, rcfg), client.Close, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.StoreBackend)
}

// NewCodec builds the codec selected by cfg.StoreCodec. In development a
// missing secret key is replaced by an ephemeral one, so sealed values do not
// survive a restart.
func NewCodec(ctx context.Context, cfg Config, log *slog.Logger) (securestore.Codec, error) {
	switch strings.ToLower(cfg.StoreCodec) {
	case CodecXOR, "":
		return securestore.NewXORCodec(cfg.ObfuscationKey), nil

	case CodecSealed:
		key, err := sealingKey(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		codec, err := securestore.NewSealedCodec(key, cfg.Name+":store")
		if err != nil {
			return nil, err
		}
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, cfg.StoreCodec)
}

func sealingKey(ctx context.Context, cfg Config, log *slog.Logger) ([]byte, error) {
	if cfg.SecretKey != "" {
		return secrets.ParseKey(cfg.SecretKey)
	}
	if environment.Parse(cfg.Env) != environment.Development {
		return nil, ErrMissingSecret
	}

	log.WarnContext(ctx, "STORE_SECRET_KEY not set, using an ephemeral key")
	return secrets.GenerateKey()
}

// NewLogger builds the application logger for cfg.
func NewLogger(cfg Config, opts ...logger.Option) *slog.Logger {
	base := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}
	return logger.New(append(base, opts...)...)
}
