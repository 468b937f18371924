package cmd

import (
	"fmt"
	"os"

	"github.com/msto63/put/lang"
	"github.com/msto63/put/lang/typecheck"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse and type-check PUT source",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&exprFlag, "expr", "e", "", "check the given expression instead of a file")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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
	if result.HasErrors() {
		return fmt.Errorf("parsing finished with %d error(s)", len(result.AllErrors()))
	}

	if err := typecheck.New().CheckProgram(result.Program); err != nil {
		fmt.Println(styled(errorStyle, err.Error()))
		return err
	}

	fmt.Println(styled(okStyle, fmt.Sprintf("OK: %d statement(s), no type errors",
		len(result.Program.Statements))))
	return nil
}
