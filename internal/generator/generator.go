package generator

import (
	"go.uber.org/zap"

	"promptgen/internal/content"
	"promptgen/internal/discovery"
	"promptgen/internal/logging"
	"promptgen/internal/prompt"
	"promptgen/internal/storage"
)

// Progress receives per-test-file updates during an auto run
type Progress interface {
	Update(done, records int)
	Finish()
}

// Generator turns test files into conversation records and appends them to storage
type Generator struct {
	scanner  *discovery.Scanner
	filter   *discovery.Filter
	loader   *content.Loader
	renderer *prompt.Renderer
	storage  storage.Storage
	progress Progress
	logger   *zap.Logger
}

// New creates a Generator
func New(
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	loader *content.Loader,
	renderer *prompt.Renderer,
	st storage.Storage,
	logger *zap.Logger,
) *Generator {
	return &Generator{
		scanner:  scanner,
		filter:   filter,
		loader:   loader,
		renderer: renderer,
		storage:  st,
		logger:   logging.OrNop(logger),
	}
}

// SetProgress sets the progress reporter for the next auto run
func (g *Generator) SetProgress(progress Progress) {
	g.progress = progress
}
