package tui

type action int

const (
	actionSend action = iota
	actionSwitch
	actionDropdown
	actionDelete
	actionLogin
	actionSignup
)

// actionDoneMsg ends every asynchronous action.
type actionDoneMsg struct {
	action action
	err    error
}
