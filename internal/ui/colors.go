package ui

// Accessors for the active theme's escape codes. They read the theme under
// the lock so they are safe to call from any goroutine.

// Accent returns the main accent color code.
func Accent() string { return GetCurrentTheme().Accent }

// Secondary returns the secondary color code.
func Secondary() string { return GetCurrentTheme().Secondary }

// Success returns the success color code.
func Success() string { return GetCurrentTheme().Success }

// Warning returns the warning color code.
func Warning() string { return GetCurrentTheme().Warning }

// Error returns the error color code.
func Error() string { return GetCurrentTheme().Error }

// Info returns the info color code.
func Info() string { return GetCurrentTheme().Info }

// Bold returns the bold escape code.
func Bold() string { return GetCurrentTheme().Bold }

// Underline returns the underline escape code.
func Underline() string { return GetCurrentTheme().Underline }

// Reset returns the reset escape code.
func Reset() string { return GetCurrentTheme().Reset }
