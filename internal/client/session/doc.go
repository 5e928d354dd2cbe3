// Package session owns the stored credential. Every read, write and removal
// of the bearer token goes through this package, and Guard is the only place
// that reacts to the server rejecting it.
package session
