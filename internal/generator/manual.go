package generator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"promptgen/internal/domain"
)

// ManualOptions describe a single explicitly specified record
type ManualOptions struct {
	Repository             string
	SourceFiles            []string
	TestFile               string
	Language               string
	Framework              string
	SourceFileContents     []string
	DependencyFileContents []string
	TestExampleContent     string
}

// Manual loads the referenced content files and appends exactly one record,
// assistant message included.
func (g *Generator) Manual(ctx context.Context, opts ManualOptions) (domain.RunSummary, error) {
	start := time.Now()
	summary := domain.RunSummary{TestFiles: 1, OutputPath: g.storage.Path()}

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	record, err := g.manualRecord(opts)
	if err != nil {
		return summary, err
	}

	n, err := g.storage.Append(record)
	summary.Bytes = n
	summary.Duration = time.Since(start)
	if err != nil {
		return summary, err
	}
	summary.Records = 1

	g.logger.Debug("record generated",
		zap.String("test_file", opts.TestFile),
		zap.Int("sources", len(opts.SourceFileContents)),
		zap.Int("dependencies", len(opts.DependencyFileContents)))
	return summary, nil
}

func (g *Generator) manualRecord(opts ManualOptions) (domain.ConversationRecord, error) {
	sourceContents, err := g.loader.Load(opts.SourceFileContents)
	if err != nil {
		return domain.ConversationRecord{}, err
	}
	depContents, err := g.loader.Load(opts.DependencyFileContents)
	if err != nil {
		return domain.ConversationRecord{}, err
	}
	example, err := g.loader.LoadFile(opts.TestExampleContent)
	if err != nil {
		return domain.ConversationRecord{}, err
	}

	// Source paths label their bodies only when they line up one to one
	paired := len(opts.SourceFiles) == len(sourceContents)
	sources := make([]domain.SourceFile, len(sourceContents))
	for i, body := range sourceContents {
		sources[i] = domain.SourceFile{Content: body}
		if paired {
			sources[i].Path = opts.SourceFiles[i]
		}
	}

	input := domain.PromptInput{
		Repository:         opts.Repository,
		TestFilePath:       opts.TestFile,
		Language:           opts.Language,
		Framework:          opts.Framework,
		Sources:            sources,
		Dependencies:       pairDependencies(opts.DependencyFileContents, depContents),
		TestExampleContent: example,
	}
	return g.renderer.Render(input, true), nil
}
