package cmd

import (
	"fmt"
	"os"

	puterror "github.com/msto63/put/core/error"
	"github.com/msto63/put/core/log"
	"github.com/msto63/put/lang"
	"github.com/msto63/put/lang/ast"
	"github.com/msto63/put/zomfile"
	"github.com/spf13/cobra"
)

var projectFile string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse PUT source and print the syntax tree",
	Long: `Parses PUT source from a file, stdin ("-"), or the -e flag and
prints the indented syntax tree. When a project file is present its
dependencies are reported before parsing starts.

Parse errors are printed to stderr; a partial tree may still be shown
for the statements parsed before the first error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&exprFlag, "expr", "e", "", "parse the given expression instead of a file")
	parseCmd.Flags().StringVar(&projectFile, "project", "project.zom", "project file to load when present")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	loadProject()

	source, err := readSource(args)
	if err != nil {
		return err
	}

	result, err := lang.ParseSource(source, lang.Options{
		Logger:         logger.WithName("parser"),
		Diagnostics:    os.Stderr,
		MaxInputLength: cfg.GetInt("parser.max_input_length"),
	})
	if err != nil {
		return err
	}

	fmt.Println(styled(headingStyle, "AST Structure:"))
	if result.Program.IsEmpty() {
		fmt.Println(styled(mutedStyle, "Failed to parse any statements."))
	} else {
		fmt.Print(styleTree(ast.TreeString(result.Program)))
	}

	if result.HasErrors() {
		return fmt.Errorf("parsing finished with %d error(s)", len(result.AllErrors()))
	}
	return nil
}

// loadProject mirrors the startup behavior of the language runtime: a
// missing project file is fine, a broken one is reported but not fatal.
func loadProject() {
	project, err := zomfile.ParseFile(projectFile)
	if err != nil {
		if puterror.HasCode(err, puterror.CodeNotFound) {
			logger.Debug("no project file found, using default configuration",
				log.Fields{"path": projectFile})
		} else {
			logger.WarnWithErr("failed to parse project file", err,
				log.Fields{"path": projectFile})
		}
		return
	}

	logger.Info("loaded project file", log.Fields{
		"name":    project.Name(),
		"version": project.Version(),
	})
	for basket, version := range project.Dependencies {
		logger.Info("loading basket", log.Fields{
			"basket":  basket,
			"version": version,
		})
	}
}
