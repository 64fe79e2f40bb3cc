// Package logging provides structured logging configuration for stagehttpd.
//
// This package wraps log/slog so the server, router and CLI all log the same
// way. It supports configurable log levels and output formats.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelInfo,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("starting local server", "port", 5103)
//
// # Integration
//
// Components accept a *slog.Logger through a WithLogger option.
// If no logger is provided they use logging.Nop().
package logging
