package prompt

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"promptgen/internal/domain"
)

// TimestampLayout is the layout of the "Generated at" line
const TimestampLayout = "2006-01-02 15:04:05"

// SystemMessage is the fixed role description sent with every record
const SystemMessage = "You are an expert in writing unit tests. " +
	"Given source files, their dependencies, the target language and the testing framework, " +
	"you write thorough unit tests that are complete and executable without lint or compile errors."

const (
	sourceHeader     = "### Source File Content:"
	sourcePathHeader = "### Source File: %s"
	dependencyHeader = "### Dependency File: %s"
	exampleFenceTag  = "python"
	entrySeparator   = "\n\n"
)

// Renderer turns a PromptInput into a conversation record
type Renderer struct {
	now func() time.Time
}

// NewRenderer creates a Renderer stamped with the local wall clock
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// NewRendererWithClock creates a Renderer with a fixed clock, for tests
func NewRendererWithClock(now func() time.Time) *Renderer {
	return &Renderer{now: now}
}

// Render builds the system and user messages, plus the assistant message
// carrying the example test when includeAssistant is set.
func (r *Renderer) Render(in domain.PromptInput, includeAssistant bool) domain.ConversationRecord {
	messages := []domain.Message{
		{Role: domain.RoleSystem, Content: SystemMessage},
		{Role: domain.RoleUser, Content: r.userMessage(in)},
	}
	if includeAssistant {
		messages = append(messages, domain.Message{
			Role:    domain.RoleAssistant,
			Content: AssistantMessage(in.TestExampleContent),
		})
	}
	return domain.ConversationRecord{Messages: messages}
}

// AssistantMessage wraps an example test in a python code fence. The tag
// does not follow the target language.
func AssistantMessage(example string) string {
	return "```" + exampleFenceTag + "\n" + example + "\n```"
}

// SourceBlock renders source bodies under per-file headers, blank-line separated
func SourceBlock(sources []domain.SourceFile) string {
	parts := make([]string, 0, len(sources))
	for _, src := range sources {
		header := sourceHeader
		if src.Path != "" {
			header = fmt.Sprintf(sourcePathHeader, src.Path)
		}
		parts = append(parts, header+"\n"+src.Content)
	}
	return strings.Join(parts, entrySeparator)
}

// DependencyBlock renders dependency bodies under headers naming only the base name
func DependencyBlock(deps []domain.DependencyFile) string {
	parts := make([]string, 0, len(deps))
	for _, dep := range deps {
		parts = append(parts, fmt.Sprintf(dependencyHeader, filepath.Base(dep.Name))+"\n"+dep.Content)
	}
	return strings.Join(parts, entrySeparator)
}

func (r *Renderer) userMessage(in domain.PromptInput) string {
	var b strings.Builder

	b.WriteString("# Task: Write Unit Tests\n\n")
	b.WriteString("Write unit tests for the source code below. Use the dependency files as context for imports, fixtures and helpers.\n\n")

	fmt.Fprintf(&b, "Repository: %s\n", in.Repository)
	fmt.Fprintf(&b, "Test File Path: %s\n", in.TestFilePath)
	fmt.Fprintf(&b, "Language: %s\n", in.Language)
	fmt.Fprintf(&b, "Testing Framework: %s\n\n", in.Framework)

	b.WriteString("## Source Files\n\n")
	b.WriteString(SourceBlock(in.Sources))
	b.WriteString("\n\n")

	b.WriteString("## Dependency Files\n\n")
	b.WriteString(DependencyBlock(in.Dependencies))
	b.WriteString("\n\n")

	b.WriteString("## Output Format\n\n")
	fmt.Fprintf(&b, "Respond with ONLY the complete test file inside a single ```%s fenced code block.\n\n", in.Language)

	fmt.Fprintf(&b, "Generated at: %s", r.now().Format(TimestampLayout))

	return b.String()
}
