package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/omegacalc/omegacalc"
)

const appName = "omegacalc"

var (
	flagPostfix bool
	flagPlain   bool
)

var (
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	caretStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var rootCmd = &cobra.Command{
	Use:   appName + " [expression ...]",
	Short: "Arithmetic expression calculator",
	Long: "Arithmetic expression calculator.\n\n" +
		"Each argument is evaluated as one expression. With no arguments an\n" +
		"interactive session starts. Type \"ops\" there for the operator table.",
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runREPL()
		}
		bad := false
		for _, expr := range args {
			if !evalAndPrint(expr) {
				bad = true
			}
		}
		if bad {
			return errors.New("some expressions failed")
		}
		return nil
	}
}

// evalAndPrint evaluates one expression and prints either the result or
// a located error. It reports whether evaluation succeeded.
func evalAndPrint(expr string) bool {
	cat := omegacalc.Default()
	tokens := cat.Tokenize(expr)
	items, err := cat.Format(tokens)
	if err != nil {
		printError(tokens, err)
		return false
	}
	if flagPostfix {
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = it.String()
		}
		fmt.Println(dimStyle.Render("postfix: " + strings.Join(parts, " ")))
	}
	v, err := omegacalc.Solve(items)
	if err != nil {
		printError(tokens, err)
		return false
	}
	fmt.Println(resultStyle.Render(fmt.Sprintf("%g", v)))
	return true
}

// printError prints an evaluation error. Formatting errors that name a
// token get the tokenized expression echoed with a caret line under the
// offending token.
func printError(tokens []string, err error) {
	var ferr *omegacalc.FormattingError
	if errors.As(err, &ferr) && ferr.Position() >= 0 && ferr.Position() < len(tokens) {
		pos := ferr.Position()
		echo := strings.Join(tokens, " ")
		// Tokens are joined by single spaces, so the caret offset is the
		// width of the preceding tokens plus one space each.
		offset := pos
		for _, t := range tokens[:pos] {
			offset += len(t)
		}
		fmt.Println(dimStyle.Render(echo))
		fmt.Println(caretStyle.Render(strings.Repeat(" ", offset) + strings.Repeat("^", len(tokens[pos]))))
	}
	fmt.Println(errorStyle.Render("error: " + err.Error()))
}

func main() {
	rootCmd.Flags().BoolVarP(&flagPostfix, "postfix", "p", false,
		"also print the postfix form of each expression")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false,
		"disable styled output")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	cobra.OnInitialize(func() {
		if flagPlain {
			plain := lipgloss.NewStyle()
			resultStyle, errorStyle, caretStyle, promptStyle, dimStyle = plain, plain, plain, plain, plain
		}
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}
