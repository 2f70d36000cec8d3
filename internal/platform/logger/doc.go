// Package logger provides structured logging functionality for the application
// using Go's standard library log/slog package.
//
// Setup builds the process-wide JSON logger from configuration. Request-scoped
// loggers travel in the context: middleware stores one with WithLogger and
// handlers and services read it back with FromContext.
package logger
