package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"promptgen/internal/domain"
)

const testFilePrefix = "Test File Path: "

// RecordViewer browses conversation records: record list on the left,
// the selected record's messages on the right.
type RecordViewer struct{}

// NewRecordViewer creates a new RecordViewer
func NewRecordViewer() *RecordViewer {
	return &RecordViewer{}
}

// View runs the TUI until Ctrl+C or q
func (rv *RecordViewer) View(records []domain.ConversationRecord) error {
	if len(records) == 0 {
		color.Yellow("No records found")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, record := range records {
		list.AddItem(RecordTitle(record, i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Records (%d total) | Use ↑↓ to navigate, → to read, ← to go back, q or Ctrl+C to exit ", len(records)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(records) {
			detailsView.SetText(FormatRecord(records[index])).ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// RecordTitle labels a record in the list by the test file it was built for
func RecordTitle(record domain.ConversationRecord, index int) string {
	title := fmt.Sprintf("Record %d", index+1)
	for _, m := range record.Messages {
		if m.Role != domain.RoleUser {
			continue
		}
		for _, line := range strings.Split(m.Content, "\n") {
			if strings.HasPrefix(line, testFilePrefix) {
				title = strings.TrimPrefix(line, testFilePrefix)
				break
			}
		}
		break
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(title))
}

// FormatRecord renders every message of a record using tview color tags
func FormatRecord(record domain.ConversationRecord) string {
	var b strings.Builder
	for i, m := range record.Messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[%s]── %s ──[white]\n", roleColor(m.Role), m.Role)
		b.WriteString(tview.Escape(m.Content))
	}
	return b.String()
}

func roleColor(role domain.Role) string {
	switch role {
	case domain.RoleSystem:
		return "gray"
	case domain.RoleUser:
		return "cyan"
	case domain.RoleAssistant:
		return "green"
	}
	return "white"
}
