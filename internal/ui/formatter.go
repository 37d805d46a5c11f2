package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"promptgen/internal/discovery"
	"promptgen/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	out    io.Writer
	parser *discovery.Parser
}

// NewFormatter creates a Formatter printing to the color-aware stdout
func NewFormatter(parser *discovery.Parser) *Formatter {
	return NewFormatterTo(color.Output, parser)
}

// NewFormatterTo creates a Formatter printing to out
func NewFormatterTo(out io.Writer, parser *discovery.Parser) *Formatter {
	return &Formatter{out: out, parser: parser}
}

// PrintHeader prints a boxed title
func (f *Formatter) PrintHeader(title string) {
	const width = 62
	pad := width - len([]rune(title))
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	cyan := color.New(color.FgCyan)
	cyan.Fprintf(f.out, "╔%s╗\n", strings.Repeat("═", width))
	cyan.Fprintf(f.out, "║%s%s%s║\n", strings.Repeat(" ", left), title, strings.Repeat(" ", pad-left))
	cyan.Fprintf(f.out, "╚%s╝\n", strings.Repeat("═", width))
}

// PrintSummary prints what a generator run appended
func (f *Formatter) PrintSummary(summary domain.RunSummary) {
	fmt.Fprintln(f.out)
	if summary.Records == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No records written")
		return
	}
	color.New(color.FgGreen).Fprintf(f.out, "✓ Appended %d record(s) from %d test file(s) to %s\n",
		summary.Records, summary.TestFiles, summary.OutputPath)
	color.New(color.FgWhite).Fprintf(f.out, "  Size: %s | Duration: %s\n",
		humanize.Bytes(uint64(summary.Bytes)), summary.Duration.Round(time.Millisecond))
}

// PrintTestList prints discovered test files as a table, optionally with
// the number of test functions in each.
func (f *Formatter) PrintTestList(root string, entries []domain.TestFileEntry, showTestCases bool) error {
	color.New(color.FgGreen).Fprintf(f.out, "Found %d test file(s):\n\n", len(entries))

	tbl := table.NewWriter()
	tbl.SetOutputMirror(f.out)
	tbl.SetStyle(table.StyleLight)

	header := table.Row{"#", "Test File", "Sources", "Dependencies"}
	if showTestCases {
		header = append(header, "Test Cases")
	}
	tbl.AppendHeader(header)

	totalCases := 0
	for i, entry := range entries {
		deps := 0
		if entry.Mapping.HasDependencies() {
			deps = len(entry.Mapping.Dependencies)
		}
		row := table.Row{i + 1, relativeTo(root, entry.Path), len(entry.Mapping.Sources), deps}
		if showTestCases {
			cases, err := f.parser.FindTestCases(entry.Path)
			if err != nil {
				return err
			}
			totalCases += len(cases)
			row = append(row, len(cases))
		}
		tbl.AppendRow(row)
	}

	footer := table.Row{"", fmt.Sprintf("Total: %d files", len(entries)), "", ""}
	if showTestCases {
		footer = append(footer, totalCases)
	}
	tbl.AppendFooter(footer)
	tbl.Render()
	return nil
}

// PrintStats prints message and size statistics for a record file
func (f *Formatter) PrintStats(path string, records []domain.ConversationRecord) {
	counts := make(map[domain.Role]int, 3)
	withAssistant := 0
	var userBytes int
	for _, r := range records {
		byRole := r.CountByRole()
		for role, n := range byRole {
			counts[role] += n
		}
		if byRole[domain.RoleAssistant] > 0 {
			withAssistant++
		}
		for _, m := range r.Messages {
			if m.Role == domain.RoleUser {
				userBytes += len(m.Content)
			}
		}
	}

	avgUser := 0
	if len(records) > 0 {
		avgUser = userBytes / len(records)
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(f.out)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(path)
	tbl.AppendRows([]table.Row{
		{"Records", len(records)},
		{"With assistant message", withAssistant},
		{"System messages", counts[domain.RoleSystem]},
		{"User messages", counts[domain.RoleUser]},
		{"Assistant messages", counts[domain.RoleAssistant]},
		{"Average user message", humanize.Bytes(uint64(avgUser))},
	})
	tbl.Render()
}

func relativeTo(root, path string) string {
	if root == "" {
		return path
	}
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
