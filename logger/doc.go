// Package logger provides structured logging for the commons packages using
// zerolog.
//
// It supports JSON and console output, level configuration, named
// component loggers, and loggers enriched from a context carrying an
// OpenTelemetry span or a fold run ID.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("pipeline")
//	log.Debug("fold started", logger.Fields(logger.FieldRunID, id))
package logger
