// Package logger builds log/slog loggers from functional options and provides
// attribute helpers so that every component names things the same way.
//
// New returns a JSON logger at INFO level unless options say otherwise.
// Environment presets (WithDevelopment, WithStaging, WithProduction,
// WithEnvironment) pick the level and format and tag records with the service
// name and environment. Context extractors add request-scoped attributes at
// logging time:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "ulma"),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "stored value is corrupted",
//		logger.Component("securestore"),
//		logger.Key("authToken"),
//		logger.Error(err),
//	)
//
// Helpers such as Error and UserID return an empty slog.Attr for nil input, so
// they can be passed unconditionally. Components that accept an optional
// logger fall back to Discard.
package logger
