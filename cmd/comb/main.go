// Command comb is a small driver for the example grammars: it checks
// JSON documents and evaluates infix arithmetic.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tef/comb/infix"
	"github.com/tef/comb/json"
)

func main() {
	root := &cobra.Command{
		Use:           "comb",
		Short:         "drive the comb example grammars",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(checkCmd(), evalCmd())

	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "parse a JSON document and print the value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			v, err := json.Parse(input)
			if err != nil {
				return fmt.Errorf("parse failed:\n%w", err)
			}
			if !quiet {
				fmt.Printf("%#v\n", v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report success or failure")
	return cmd
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPRESSION...",
		Short: "evaluate an infix arithmetic expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			v, err := infix.Eval(expr)
			if err != nil {
				return fmt.Errorf("eval failed:\n%w", err)
			}
			fmt.Println(v)
			return nil
		},
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}
