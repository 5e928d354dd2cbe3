package tui

const (
	keyQuit     = "ctrl+c"
	keyNewChat  = "ctrl+n"
	keyDelete   = "ctrl+d"
	keyDropdown = "ctrl+o"
	keyLogout   = "ctrl+l"
	keySignup   = "ctrl+t"
	keyEnter    = "enter"
	keyTab      = "tab"
	keyBackTab  = "shift+tab"
	keyUp       = "up"
	keyDown     = "down"
	keyEsc      = "esc"
)

const (
	helpMain  = "1/2/3 or tab: switch view • enter: send/load • ↑/↓: select • ctrl+d: delete • ctrl+o: history dropdown • ctrl+n: new chat • ctrl+l: logout • ctrl+c: quit"
	helpLogin = "tab: next field • enter: submit • ctrl+t: toggle login/sign up • ctrl+c: quit"
)
