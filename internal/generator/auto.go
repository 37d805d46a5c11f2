package generator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"promptgen/internal/domain"
	"promptgen/internal/storage"
)

// AutoOptions describe an auto run over a discovered repository
type AutoOptions struct {
	Repository       string
	Language         string
	Framework        string
	IncludeAssistant bool
}

// Discover scans root and applies the name filter
func (g *Generator) Discover(root, nameFilter string) ([]domain.TestFileEntry, error) {
	entries, err := g.scanner.Scan(root)
	if err != nil {
		return nil, err
	}
	return g.filter.FilterByName(entries, nameFilter), nil
}

// Auto appends one record per entry, in order. The first error aborts the
// run; records appended before it stay in the output file.
func (g *Generator) Auto(ctx context.Context, entries []domain.TestFileEntry, opts AutoOptions) (domain.RunSummary, error) {
	start := time.Now()
	summary := domain.RunSummary{TestFiles: len(entries), OutputPath: g.storage.Path()}
	if len(entries) == 0 {
		return summary, nil
	}

	sink, err := g.storage.Open()
	if err != nil {
		return summary, err
	}

	runErr := g.appendAll(ctx, sink, entries, opts)
	closeErr := sink.Close()

	if g.progress != nil {
		g.progress.Finish()
	}

	summary.Records = sink.Records()
	summary.Bytes = sink.Bytes()
	summary.Duration = time.Since(start)

	if runErr != nil {
		return summary, runErr
	}
	return summary, closeErr
}

func (g *Generator) appendAll(ctx context.Context, sink storage.RecordSink, entries []domain.TestFileEntry, opts AutoOptions) error {
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := g.autoRecord(entry, opts)
		if err != nil {
			return fmt.Errorf("test file %s: %w", entry.Path, err)
		}
		if err := sink.Write(record); err != nil {
			return err
		}

		g.logger.Debug("record generated",
			zap.String("test_file", entry.Path),
			zap.Int("sources", len(entry.Mapping.Sources)),
			zap.Int("dependencies", len(entry.Mapping.Dependencies)))

		if g.progress != nil {
			g.progress.Update(i+1, i+1)
		}
	}
	return nil
}

func (g *Generator) autoRecord(entry domain.TestFileEntry, opts AutoOptions) (domain.ConversationRecord, error) {
	sourceContents, err := g.loader.Load(entry.Mapping.Sources)
	if err != nil {
		return domain.ConversationRecord{}, err
	}
	depContents, err := g.loader.Load(entry.Mapping.Dependencies)
	if err != nil {
		return domain.ConversationRecord{}, err
	}
	example, err := g.loader.LoadFile(entry.Path)
	if err != nil {
		return domain.ConversationRecord{}, err
	}

	sources := make([]domain.SourceFile, len(sourceContents))
	for i, body := range sourceContents {
		sources[i] = domain.SourceFile{Content: body}
	}

	input := domain.PromptInput{
		Repository:         opts.Repository,
		TestFilePath:       entry.Path,
		Language:           opts.Language,
		Framework:          opts.Framework,
		Sources:            sources,
		Dependencies:       pairDependencies(entry.Mapping.Dependencies, depContents),
		TestExampleContent: example,
	}
	return g.renderer.Render(input, opts.IncludeAssistant), nil
}

func pairDependencies(names, contents []string) []domain.DependencyFile {
	deps := make([]domain.DependencyFile, len(names))
	for i, name := range names {
		deps[i] = domain.DependencyFile{Name: name, Content: contents[i]}
	}
	return deps
}
