package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	dupfinder "github.com/syntoxine/doubloon/internal/dup-finder"
	"github.com/syntoxine/doubloon/internal/logger"
)

type flags struct {
	cfgFile  string
	logLevel string
	output   string
	showTree bool
	export   bool
	summary  bool
	noColor  bool
	exclude  []string
}

// app carries everything one invocation needs; nothing is shared between runs
type app struct {
	fsys    afero.Fs
	getwd   func() (string, error)
	scanner DuplicateScanner
	v       *viper.Viper
	log     *log.Logger
	flags   flags
}

// Option customizes the root command
type Option func(*app)

// WithFs runs the command against fsys instead of the OS filesystem
func WithFs(fsys afero.Fs) Option {
	return func(a *app) { a.fsys = fsys }
}

// WithWorkingDir replaces the working directory lookup
func WithWorkingDir(getwd func() (string, error)) Option {
	return func(a *app) { a.getwd = getwd }
}

// WithScanner replaces the duplicate scanner
func WithScanner(s DuplicateScanner) Option {
	return func(a *app) { a.scanner = s }
}

// NewRootCmd builds the doubloon command
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{
		fsys:    afero.NewOsFs(),
		getwd:   os.Getwd,
		scanner: NewDefaultDuplicateScanner(),
		v:       newConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}

	cmd := &cobra.Command{
		Use:   "doubloon [directory]",
		Short: "Utility to check for file duplicates",
		Long: `Doubloon scans a directory tree and reports files that share the same name.
Files are compared by name only, never by content. Hidden files and directories
are ignored. The directory can also be shown as a tree, or the duplicates
exported to doubloon-duplicates.csv in the working directory.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.configure,
		RunE:              a.run,
	}

	cmd.PersistentFlags().StringVar(&a.flags.cfgFile, "config", "", "config file (default is ./doubloon.yaml)")
	cmd.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.Flags().BoolVar(&a.flags.showTree, "show-tree", false, "show a tree of the directory instead of duplicates")
	cmd.Flags().BoolVar(&a.flags.export, "export", false, "write duplicates to doubloon-duplicates.csv instead of printing them")
	cmd.Flags().StringVarP(&a.flags.output, "output", "o", OutputTable, "report format (table, plain, json, yaml)")
	cmd.Flags().BoolVar(&a.flags.summary, "summary", false, "print scan statistics after the report")
	cmd.Flags().BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringArrayVar(&a.flags.exclude, "exclude", []string{}, "glob pattern of paths to skip, can be specified multiple times")

	return cmd
}

// configure loads the config file and sets up logging before the command runs.
// Log level precedence: command-line flag, then config value, then info.
func (a *app) configure(cmd *cobra.Command, args []string) error {
	a.log = logger.New(cmd.ErrOrStderr(), logger.InfoLevel)

	wd, err := a.getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	if err := a.loadConfig(wd); err != nil {
		return err
	}

	logLevelToUse := logger.InfoLevel
	if configLogLevel := a.v.GetString("logLevel"); configLogLevel != "" {
		logLevelToUse = configLogLevel
	}
	if a.flags.logLevel != "" {
		logLevelToUse = a.flags.logLevel
	}
	logger.SetLevel(a.log, logLevelToUse)

	a.log.Debug("Log level configured: " + logLevelToUse)
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("Using config file: " + used)
	}

	if !cmd.Flags().Changed("output") {
		a.flags.output = a.v.GetString("output")
	}
	return validateOutput(a.flags.output)
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	root, err := a.resolveRoot(args)
	if err != nil {
		return err
	}

	exclude, err := a.excludePatterns()
	if err != nil {
		return err
	}

	// --show-tree wins over --export
	if a.flags.showTree {
		return a.showTree(cmd.OutOrStdout(), root, exclude)
	}

	a.log.Debug("scanning for duplicates", "root", root, "exclude", exclude)
	res, err := a.scanner.Scan(a.fsys, root, dupfinder.Options{Exclude: exclude})
	if err != nil {
		return err
	}
	for _, skipped := range res.Skipped {
		logger.WarnStyled(a.log, "skipping unreadable entry", "path", skipped.Path, "error", skipped.Err)
	}

	if a.flags.export {
		return a.exportReport(cmd.OutOrStdout(), res)
	}
	return a.printReport(cmd.OutOrStdout(), res)
}

// resolveRoot turns the optional directory argument into an absolute, existing directory
func (a *app) resolveRoot(args []string) (string, error) {
	wd, err := a.getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}

	root := wd
	if len(args) > 0 && args[0] != "" {
		root = args[0]
		if !filepath.IsAbs(root) {
			root = filepath.Join(wd, root)
		}
	}
	root = filepath.Clean(root)

	info, err := a.fsys.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s does not exist", dupfinder.ErrInvalidPath, root)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", dupfinder.ErrInvalidPath, root)
	}
	return root, nil
}

// Execute executes the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logger.ErrorStyled(logger.New(os.Stderr, logger.ErrorLevel), err.Error())
		os.Exit(1)
	}
}
