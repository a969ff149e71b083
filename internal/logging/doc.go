// Package logging provides structured logging using uber/zap.
//
// The analyzer writes its report to stdout, so every diagnostic — structured
// or not — goes to stderr. The default level is warn, keeping normal runs
// silent apart from the report and the fixed-format warning lines the loader
// emits itself.
//
// Example Usage:
//
//	logger := logging.NewOrNop(logging.Config{Level: "debug"})
//	logger.Debug("loaded batches", zap.Int("count", n))
package logging
