// Package tui is the full-screen front end. It drives the same ui state as
// the REPL through a bubbletea program: tabs for chat, history and profile,
// an input line shown only in the chat view, and a login screen that comes
// up whenever the session guard asks for credentials.
//
// Every call that may reach the network runs in a tea.Cmd and reports back
// with actionDoneMsg; the session guard's redirects and the panels' notices
// are collected by bridge and applied when that message arrives.
package tui
