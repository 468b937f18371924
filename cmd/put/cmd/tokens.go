package cmd

import (
	"fmt"

	"github.com/msto63/put/lang/parser"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream of PUT source",
	Long: `Lexes PUT source from a file, stdin ("-"), or the -e flag and
prints every token with its type, lexeme, and position. Unexpected
characters are reported but do not stop the scan.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().StringVarP(&exprFlag, "expr", "e", "", "lex the given expression instead of a file")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	tokens, lexErrs := parser.TokenizeInput(source)

	fmt.Println(styled(headingStyle, "Tokens:"))
	fmt.Printf("%-12s %-20s %5s %7s\n", "TYPE", "LEXEME", "LINE", "COLUMN")
	for _, tok := range tokens {
		fmt.Printf("%-12s %-20s %5d %7d\n",
			tok.Type.String(), tok.Lexeme, tok.Line, tok.Column)
	}

	for _, lexErr := range lexErrs {
		fmt.Println(styled(errorStyle, lexErr.Error()))
	}

	if len(lexErrs) > 0 {
		return fmt.Errorf("lexing finished with %d error(s)", len(lexErrs))
	}
	return nil
}
