// Package environment names the deployment environment (development, staging,
// production) and carries it through context.Context so that loggers and
// other components can adapt their behaviour.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	ctx = environment.WithContext(ctx, env)
//	if environment.IsProduction(ctx) {
//		// stricter defaults
//	}
//
// LoggerExtractor plugs the environment into logger.WithContextExtractors.
package environment
