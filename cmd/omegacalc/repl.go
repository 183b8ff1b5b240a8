package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/omegacalc/omegacalc"
)

// runREPL runs the interactive loop: one expression per line, with
// history and tab completion for operator symbols and commands.
func runREPL() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptStyle.Render(appName + "> "),
		HistoryFile:     historyFile(),
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println(dimStyle.Render("Type an expression, \"ops\" for the operator table, \"exit\" to leave."))
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			fmt.Println(rootCmd.Long)
		case "ops":
			printOperators()
		default:
			evalAndPrint(line)
		}
	}
}

func completer() readline.AutoCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("ops"),
		readline.PcItem("exit"),
		readline.PcItem("quit"),
	}
	for _, s := range omegacalc.Default().Symbols() {
		items = append(items, readline.PcItem(s))
	}
	return readline.NewPrefixCompleter(items...)
}

// historyFile returns the path of the REPL history, or empty to disable
// history when no home directory is available.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "."+appName+"_history")
}

func printOperators() {
	for _, op := range omegacalc.Default().Operators() {
		sym := op.Symbol()
		if end := op.EndSymbol(); end != "" {
			sym += " " + end
		}
		fmt.Printf("%s  %s\n",
			resultStyle.Render(fmt.Sprintf("%-3s", sym)),
			dimStyle.Render(describe(op)))
	}
}

func describe(op *omegacalc.Operator) string {
	var shape string
	switch op.Class() {
	case omegacalc.Binary:
		shape = "a " + op.Symbol() + " b"
	case omegacalc.UnaryBefore:
		shape = "a" + op.Symbol()
	case omegacalc.UnaryAfter:
		shape = op.Symbol() + "a"
	case omegacalc.Container:
		shape = op.Symbol() + "a" + op.EndSymbol()
	}
	return fmt.Sprintf("%-7s priority %g", shape, op.Priority())
}
