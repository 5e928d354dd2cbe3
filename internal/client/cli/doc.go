// Package cli provides the interactive textfix command-line client.
//
// It wires configuration, the local session store, API services and the
// shared ui state into a REPL. Typical flow: log in (or sign up), start a
// background connectivity watcher, then type text to have it corrected.
//
// Commands:
//   - login / signup / otp / logout
//   - chat, history, dropdown, profile to switch panels
//   - send <text> (or just type text in the chat view), paste for multi-line input
//   - load <id>, delete <id> on the visible history list
//   - new to start over, export [file] to save the transcript as HTML
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
