package ui

import "promptgen/internal/domain"

// Viewer displays conversation records in an interactive TUI
type Viewer interface {
	View(records []domain.ConversationRecord) error
}
