package config

const (
	// DefaultOutputFile is where records are appended when --output is not given
	DefaultOutputFile = "fine_tuning.jsonl"
	// DefaultTestDirMarker is the substring that marks a directory as a test directory
	DefaultTestDirMarker = "test_"
	// DefaultSourceDirName is the subdirectory of a test directory holding source files
	DefaultSourceDirName = "source_files"
	// DefaultDependencyDirName is the subdirectory of a test directory holding dependency files
	DefaultDependencyDirName = "dependent_files"
	// DefaultLogLevel is the zap level used without --verbose
	DefaultLogLevel = "warn"
	// DefaultShowProgress enables the progress bar on auto runs
	DefaultShowProgress = true
	// DefaultIncludeAssistant controls the assistant turn on auto runs
	DefaultIncludeAssistant = false
)

// DefaultSourceExtensions are the file suffixes collected from source and dependency directories
var DefaultSourceExtensions = []string{".py"}

// DefaultPathsToIgnore are directories pruned from the walk. Empty so every
// directory is visited unless configured otherwise.
var DefaultPathsToIgnore = []string{}
