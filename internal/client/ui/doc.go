// Package ui holds the presentation state shared by the REPL and the TUI.
//
// Controller is a small store: it owns the current State and hands every
// change to its subscribers. Each panel (history list, dropdown, profile)
// subscribes once and refreshes itself when it becomes visible. Panels keep
// their own data behind a mutex and guard every fetch with a request ticket,
// so a response that arrives after a newer request was issued is dropped.
//
// Nothing in this package renders; see the render subpackage.
package ui
