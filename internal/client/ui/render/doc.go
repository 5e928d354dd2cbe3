// Package render turns ui state into text. HTML output goes through
// html/template, so user and server text is always escaped. Terminal output
// is styled with lipgloss after control sequences have been stripped.
package render
