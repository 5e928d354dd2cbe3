package models

// Role tells who authored a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry. Text is kept verbatim; renderers are
// responsible for escaping it.
type Message struct {
	Role Role
	Text string
}

// IsUser reports whether the message was authored by the user.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}
