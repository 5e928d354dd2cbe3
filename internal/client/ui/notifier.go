package ui

// Messages shown to the user when an action fails or yields nothing.
const (
	MsgAnalyzeFailed   = "Failed to analyze text. Please try again."
	MsgAnalyzeEmpty    = "Analysis completed"
	MsgHistoryFailed   = "Failed to load history"
	MsgDeleteFailed    = "Failed to delete history"
	MsgProfileFailed   = "Failed to load profile"
	MsgHistoryEmpty    = "No history yet"
	MsgConfirmDelete   = "Are you sure you want to delete this history item?"
	MsgWelcome         = "Paste or type text and press Enter to get it corrected."
	MsgLoginFailed     = "Login failed"
	MsgSignupFailed    = "Signup failed"
	MsgOTPInvalid      = "OTP invalid"
	MsgOTPVerified     = "OTP verified! Now you can fill name & password and Sign Up."
	MsgOTPSendFailed   = "Failed to send OTP"
	MsgAlreadyLoggedIn = "Already logged in"
)

// Notifier shows a blocking notice naming a failed action. err is the cause
// and is meant for logs, not for display.
type Notifier interface {
	Notice(message string, err error)
}

type NotifierFunc func(message string, err error)

func (f NotifierFunc) Notice(message string, err error) { f(message, err) }
