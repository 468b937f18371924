package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/msto63/put/core/config"
	"github.com/msto63/put/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	verbose   bool
	noColor   bool
	exprFlag  string

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "put",
	Short: "Toolchain for the PUT expression language",
	Long: `put lexes, parses, and inspects PUT source files.

Commands:
  parse        - parse source and print the syntax tree
  tokens       - dump the token stream
  check        - parse and type-check source
  tensor-demo  - demonstrate the tensor operations
  version      - show version information`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered put.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace|debug|info|warn|error|fatal)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json|text|console)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setup loads the tool configuration and builds the logger every
// subcommand shares. Flags win over config values.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.DiscoverWithDefaults()
	}
	if err != nil {
		printError("failed to load configuration", err)
		return err
	}

	level := log.DefaultLevel()
	if s := firstValue(logLevel, cfg.GetString("log.level")); s != "" {
		if level, err = log.ParseLevel(s); err != nil {
			printError("invalid log level", err)
			return err
		}
	}
	if verbose {
		level = log.LevelDebug
	}

	format := log.FormatConsole
	if s := firstValue(logFormat, cfg.GetString("log.format")); s != "" {
		if format, err = log.ParseFormat(s); err != nil {
			printError("invalid log format", err)
			return err
		}
	}

	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "put",
	}).WithRunID(uuid.New().String())
	log.SetDefault(logger)

	return nil
}

// readSource resolves the source text for commands that accept either a
// file argument, "-" for stdin, or the -e flag.
func readSource(args []string) (string, error) {
	if exprFlag != "" {
		return exprFlag, nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func firstValue(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
