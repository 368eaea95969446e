// Package redis connects to Redis and exposes it as a string key-value
// backend for the securestore package.
//
// Connect retries the initial ping according to Config. Storage implements
// GetItem, SetItem, RemoveItem and Clear under a key prefix, so Clear never
// touches keys owned by other applications. Healthcheck returns a probe
// function for readiness checks.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := securestore.New(redis.NewStorageWithConfig(client, cfg))
//
// Config fields are read from REDIS_* environment variables through
// github.com/caarlos0/env. Errors wrap sentinels such as ErrRedisNotReady with
// errors.Join.
package redis
