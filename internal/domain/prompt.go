package domain

// SourceFile is a source body embedded in the user message. Path is optional;
// when empty the block is rendered without a file name.
type SourceFile struct {
	Path    string
	Content string
}

// DependencyFile is a dependency body embedded in the user message. Only the
// base name of Name is displayed.
type DependencyFile struct {
	Name    string
	Content string
}

// PromptInput holds everything needed to render one conversation record
type PromptInput struct {
	Repository         string
	TestFilePath       string
	Language           string
	Framework          string
	Sources            []SourceFile
	Dependencies       []DependencyFile
	TestExampleContent string
}
