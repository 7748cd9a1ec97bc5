// Package ui manages terminal color themes for the CLI and the TUI.
// It honors the NO_COLOR convention (https://no-color.org/) and exposes
// thread-safe accessors for the active theme's escape codes.
package ui
