package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/XJIeI5/infixcalc/internal/calcerr"
	"github.com/XJIeI5/infixcalc/internal/calculator"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const prompt = "> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read expressions line by line and print their results",
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, _ []string) error {
	calc, err := newCalculator()
	if err != nil {
		return err
	}
	return repl(calc, cmd.InOrStdin(), cmd.OutOrStdout())
}

func repl(calc *calculator.Calculator, in io.Reader, out io.Writer) error {
	var (
		sc       = bufio.NewScanner(in)
		resColor = color.New(color.FgGreen)
		errColor = color.New(color.FgRed)
	)

	for {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}

		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		res, err := calc.Evaluate(line)
		if err != nil {
			errColor.Fprintln(out, describeError(err))
			continue
		}
		resColor.Fprintln(out, calculator.FormatResult(res))
	}
}

// describeError prefixes core errors with the stage that raised them.
func describeError(err error) string {
	var calcErr *calcerr.Error
	if !errors.As(err, &calcErr) {
		return "error: " + err.Error()
	}
	return fmt.Sprintf("%s error: %s", calcErr.Stage, calcErr.Error())
}
