// Package ui provides terminal color themes and accessor functions used by
// the CLI presentation layer. Themes honor the NO_COLOR convention.
package ui
