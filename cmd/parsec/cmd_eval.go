package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/parsec/exprlang"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "eval <expr>",
		Short: "Parse and evaluate an exprlang expression",
		Long: `Parse and evaluate an exprlang expression.

The expression is taken from the argument, or read from stdin if the
argument is "-".

Examples:
  parsec eval "1 + 2 * 3"
  echo '(1 + 2) * 3' | parsec eval -
  parsec eval --format json "x * 2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(args[0], outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}

func runEval(source, outputFormat string) error {
	src := source
	if src == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		src = strings.TrimSpace(string(data))
	}

	expr, parseErr := exprlang.Parse(src)
	if parseErr != nil {
		return fmt.Errorf("parse expression: %w", parseErr)
	}

	switch outputFormat {
	case "json":
		data, err := exprlang.MarshalJSON(expr)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		fmt.Println(string(data))
	case "text":
		value, err := exprlang.Eval(expr, nil)
		if err != nil {
			return fmt.Errorf("evaluate expression: %w", err)
		}
		fmt.Printf("%v\n", value)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}

	return nil
}
