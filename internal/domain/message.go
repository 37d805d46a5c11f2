package domain

// Role tags a message in a conversation record
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged turn
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ConversationRecord is one line of the fine-tuning corpus
type ConversationRecord struct {
	Messages []Message `json:"messages"`
}

// CountByRole returns the number of messages per role
func (r ConversationRecord) CountByRole() map[Role]int {
	counts := make(map[Role]int, 3)
	for _, m := range r.Messages {
		counts[m.Role]++
	}
	return counts
}
