package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"samplecalc/internal/calc"
	"samplecalc/internal/config"
	"samplecalc/internal/logging"
)

// Build information, set via -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var errNoCommand = errors.New("no command given")

// app carries the state shared by every subcommand of one invocation
type app struct {
	configPath string
	name       string
	logLevel   string
	logFormat  string

	log  *logrus.Entry
	calc *calc.Calculator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "calc",
		Short:         "Integer calculator and number utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Usage(); err != nil {
				return err
			}
			return errNoCommand
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", os.Getenv("CALC_CONFIG"), "path to a YAML config file")
	flags.StringVar(&a.name, "name", "", "calculator name")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")

	root.AddCommand(
		a.addCmd(),
		a.subtractCmd(),
		a.multiplyCmd(),
		a.divideCmd(),
		a.factorialCmd(),
		a.fibonacciCmd(),
		a.evenCmd(),
		a.mixCmd(),
		a.adderCmd(),
		a.chooseCmd(),
		a.mapCmd(),
		versionCmd(),
	)
	return root
}

// setup resolves config with flags taking precedence, then builds the logger and calculator.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.name != "" {
		cfg.Name = a.name
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.log = logging.WithRun(log)
	a.calc = calc.NewCalculator(cfg.Name, a.log)
	a.log.WithField("command", cmd.Name()).Debug("starting")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
