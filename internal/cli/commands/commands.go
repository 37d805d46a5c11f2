package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptgen/internal/cli"
	"promptgen/internal/config"
	"promptgen/internal/content"
	"promptgen/internal/discovery"
	"promptgen/internal/generator"
	"promptgen/internal/logging"
	"promptgen/internal/prompt"
	"promptgen/internal/storage"
	"promptgen/internal/ui"
)

// MultiValueFlags accept a space-separated list after the flag name
var MultiValueFlags = []string{"source_file", "source_file_content", "dependencies_file_content"}

// Deps are built once the config file and flags are known
type Deps struct {
	Config    *config.Config
	Logger    *zap.Logger
	Generator *generator.Generator
	Formatter *ui.Formatter
	Storage   storage.Storage
	Viewer    ui.Viewer
}

// Commands holds all CLI commands
type Commands struct {
	flags *cli.Flags
	deps  *Deps

	Auto     *AutoCommand
	Generate *GenerateCommand
	List     *ListCommand
	Stats    *StatsCommand
	View     *ViewCommand
}

// NewCommands creates all commands sharing one set of flags and dependencies
func NewCommands(flags *cli.Flags) *Commands {
	deps := &Deps{}
	return &Commands{
		flags:    flags,
		deps:     deps,
		Auto:     NewAutoCommand(deps),
		Generate: NewGenerateCommand(deps),
		List:     NewListCommand(deps),
		Stats:    NewStatsCommand(deps),
		View:     NewViewCommand(deps),
	}
}

// Setup validates required flags, loads configuration, builds the logger and
// wires the pipeline. Runs as the root's PersistentPreRunE.
func (c *Commands) Setup(cmd *cobra.Command, args []string) error {
	if err := cmd.ValidateRequiredFlags(); err != nil {
		return err
	}
	// Flags parsed fine, later errors are not usage errors
	cmd.SilenceUsage = true

	if f := cmd.Flags().Lookup("include_assistant"); f != nil {
		c.flags.IncludeAssistantSet = f.Changed
	}

	cfg, err := config.Load(c.flags.ConfigFile)
	if err != nil {
		return err
	}
	cfg.Flags = c.flags.ToConfigFlags()

	logger, err := logging.New(cfg.GetLogLevel())
	if err != nil {
		return err
	}

	scanner := discovery.NewScanner(cfg, logger)
	st := storage.NewJSONLStorage(cfg, logger)

	c.deps.Config = cfg
	c.deps.Logger = logger
	c.deps.Storage = st
	c.deps.Formatter = ui.NewFormatter(discovery.NewParser())
	c.deps.Viewer = ui.NewRecordViewer()
	c.deps.Generator = generator.New(
		scanner,
		discovery.NewFilter(),
		content.NewLoader(logger),
		prompt.NewRenderer(),
		st,
		logger,
	)

	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("output", cfg.GetOutputPath()),
		zap.Strings("source_extensions", cfg.SourceExtensions))
	return nil
}

// Teardown flushes the logger
func (c *Commands) Teardown(cmd *cobra.Command, args []string) {
	if c.deps.Logger != nil {
		_ = c.deps.Logger.Sync()
	}
}

// AsRoot attaches the global flags and lifecycle hooks to a root command
func (c *Commands) AsRoot(rootCmd *cobra.Command) *cobra.Command {
	rootCmd.PersistentFlags().StringVar(&c.flags.ConfigFile, "config", "", "Path to a YAML config file (default .promptgen.yaml in the working or home directory)")
	rootCmd.PersistentFlags().BoolVarP(&c.flags.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRunE = c.Setup
	rootCmd.PersistentPostRun = c.Teardown
	rootCmd.SilenceErrors = true
	return rootCmd
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command) {
	c.AsRoot(rootCmd)
	rootCmd.AddCommand(
		c.AutoCobra("auto"),
		c.GenerateCobra("generate"),
		c.ListCobra(),
		c.StatsCobra(),
		c.ViewCobra(),
	)
}

// AutoCobra builds the auto command under the given name
func (c *Commands) AutoCobra(use string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Generate fine-tuning records for every test file in a repository",
		Long: `Walk a repository, find every file inside a directory whose name contains "test_",
pair it with the .py files in its source_files and dependent_files subdirectories,
and append one JSON Lines conversation record per test file to the output file.`,
		Args: cobra.NoArgs,
		RunE: c.Auto.Execute,
	}
	f := cmd.Flags()
	f.StringVar(&c.flags.Repository, "repository", "", "Repository name shown in the prompt")
	f.StringVar(&c.flags.RepoPath, "repo_path", "", "Path to the repository to scan")
	f.StringVar(&c.flags.Language, "language", "", "Programming language of the project")
	f.StringVar(&c.flags.Framework, "framework", "", "Testing framework of the project")
	f.StringVar(&c.flags.Output, "output", "", "JSON Lines file to append records to (default \""+config.DefaultOutputFile+"\")")
	f.StringVarP(&c.flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. 'test_*.py' or '*cells*')")
	f.BoolVar(&c.flags.IncludeAssistant, "include_assistant", false, "Append the test file itself as the assistant message")
	markRequired(cmd, "repository", "repo_path", "language", "framework")
	return cmd
}

// GenerateCobra builds the manual command under the given name
func (c *Commands) GenerateCobra(use string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Generate one fine-tuning record from explicitly listed files",
		Long: `Read the given source, dependency and example test files and append exactly one
JSON Lines conversation record, including the example test as the assistant message.`,
		Args: cobra.NoArgs,
		RunE: c.Generate.Execute,
	}
	f := cmd.Flags()
	f.StringVar(&c.flags.Repository, "repository", "", "Repository name shown in the prompt")
	f.StringArrayVar(&c.flags.SourceFiles, "source_file", nil, "Source file path(s) shown in the prompt")
	f.StringVar(&c.flags.TestFile, "test_file", "", "Path of the test file the record is about")
	f.StringVar(&c.flags.Language, "language", "", "Programming language of the project")
	f.StringVar(&c.flags.Framework, "framework", "", "Testing framework of the project")
	f.StringArrayVar(&c.flags.SourceFileContents, "source_file_content", nil, "File(s) holding the source content")
	f.StringArrayVar(&c.flags.DependencyFileContents, "dependencies_file_content", nil, "File(s) holding the dependency content")
	f.StringVar(&c.flags.TestExampleContent, "test_example_content", "", "File holding the example test")
	f.StringVar(&c.flags.Output, "output", "", "JSON Lines file to append records to (default \""+config.DefaultOutputFile+"\")")
	markRequired(cmd, "repository", "source_file", "test_file", "language", "framework",
		"source_file_content", "dependencies_file_content", "test_example_content")
	return cmd
}

// ListCobra builds the list command
func (c *Commands) ListCobra() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test files",
		Long:  "Scan a repository and list every test file with its source and dependency counts without writing records",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	cmd.Flags().StringVar(&c.flags.RepoPath, "repo_path", ".", "Path to the repository to scan")
	cmd.Flags().StringVarP(&c.flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. 'test_*.py' or '*cells*')")
	cmd.Flags().BoolVarP(&c.flags.TestCases, "test-cases", "c", false, "Count test functions in each test file")
	return cmd
}

// StatsCobra builds the stats command
func (c *Commands) StatsCobra() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize an existing records file",
		Args:  cobra.NoArgs,
		RunE:  c.Stats.Execute,
	}
	cmd.Flags().StringVar(&c.flags.Output, "output", "", "JSON Lines file to read (default \""+config.DefaultOutputFile+"\")")
	return cmd
}

// ViewCobra builds the view command
func (c *Commands) ViewCobra() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse an existing records file interactively",
		Args:  cobra.NoArgs,
		RunE:  c.View.Execute,
	}
	cmd.Flags().StringVar(&c.flags.Output, "output", "", "JSON Lines file to read (default \""+config.DefaultOutputFile+"\")")
	return cmd
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("mark %s required: %v", name, err))
		}
	}
}
