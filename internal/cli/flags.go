package cli

import "promptgen/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile             string
	Verbose                bool
	Repository             string
	RepoPath               string
	Language               string
	Framework              string
	Output                 string
	NameFilter             string
	SourceFiles            []string
	TestFile               string
	SourceFileContents     []string
	DependencyFileContents []string
	TestExampleContent     string
	IncludeAssistant       bool
	IncludeAssistantSet    bool
	TestCases              bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Repository:             f.Repository,
		RepoPath:               f.RepoPath,
		Language:               f.Language,
		Framework:              f.Framework,
		Output:                 f.Output,
		NameFilter:             f.NameFilter,
		SourceFiles:            f.SourceFiles,
		TestFile:               f.TestFile,
		SourceFileContents:     f.SourceFileContents,
		DependencyFileContents: f.DependencyFileContents,
		TestExampleContent:     f.TestExampleContent,
		IncludeAssistant:       f.IncludeAssistant,
		IncludeAssistantSet:    f.IncludeAssistantSet,
		Verbose:                f.Verbose,
	}
}
