// Package logger provides structured logging functionality for the application.
//
// It builds JSON log/slog loggers with a configurable level and carries a
// request-scoped logger through context.Context so that handlers, services
// and the transaction helper log with the same trace attributes.
package logger
