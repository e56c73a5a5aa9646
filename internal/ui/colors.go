package ui

// Color accessor functions return the escape code for a named color category
// in the currently active theme. Callers compose them directly into format
// strings; when the no-color theme is active every accessor returns "".

// ColorBlue returns the primary accent color.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorGrey returns the secondary (dimmed) color.
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the informational color.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorMagenta returns the accent color used for operation inputs.
func ColorMagenta() string { return GetCurrentTheme().Accent }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }
