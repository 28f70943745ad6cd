// Package logging provides structured logging for the enhancement
// engine and its CLI.
//
// Logging is silent by default so the curated CLI and TUI output stays
// clean. Set the ENHANCE_LOG_LEVEL environment variable to "debug",
// "info", "warn", or "error" to enable zap console output, which is
// useful when diagnosing which passes ran and why.
package logging
