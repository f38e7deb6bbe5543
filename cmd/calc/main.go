package main

import (
	"os"

	"github.com/XJIeI5/infixcalc/internal/calculator"
	"github.com/XJIeI5/infixcalc/internal/config"
	"github.com/XJIeI5/infixcalc/internal/token"
	"github.com/spf13/cobra"
)

var (
	configFile string
	modeFlag   string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Evaluate arithmetic expressions",
	Long: `Calc evaluates infix expressions over decimal numbers with + - * / and
parentheses, e.g. calc eval "2 + 3 * (4 - 1)".

Without a subcommand it starts an interactive prompt.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd, args)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "numeric tokenization: runs or chars")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(evalCmd, replCmd)
}

// newCalculator applies flags on top of the loaded configuration.
func newCalculator() (*calculator.Calculator, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if modeFlag != "" {
		mode, err := token.ParseMode(modeFlag)
		if err != nil {
			return nil, err
		}
		cfg.Tokenizer = mode
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return calculator.New(
		calculator.WithMode(cfg.Tokenizer),
		calculator.WithLogger(cfg.Logger(os.Stderr)),
	), nil
}
