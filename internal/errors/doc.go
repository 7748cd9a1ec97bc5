// Package apperrors defines the error types and exit codes used across the
// application. It centralizes error classification so that the CLI, REPL and
// TUI surfaces map failures to consistent exit statuses.
package apperrors
