package main

import (
	"fmt"
	"strings"

	"github.com/XJIeI5/infixcalc/internal/calculator"
	"github.com/spf13/cobra"
)

var showPostfix bool

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Evaluate one expression and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, err := newCalculator()
		if err != nil {
			return err
		}

		expr := strings.Join(args, " ")
		if showPostfix {
			postfix, err := calc.Postfix(expr)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), postfix)
		}

		res, err := calc.Evaluate(expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), calculator.FormatResult(res))
		return nil
	},
}

func init() {
	evalCmd.Flags().BoolVar(&showPostfix, "postfix", false, "also print the expression in reverse polish notation")
}
