// Package logger provides structured logging on top of Zap.
// A process-wide sugared logger with an adjustable level is used by default;
// callers can attach a derived logger (for example one carrying a session id)
// to a context, and every helper in this package picks it up from there.
package logger
