package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thywilljoshua/mathq/internal/config"
	"github.com/thywilljoshua/mathq/internal/logging"
	"github.com/thywilljoshua/mathq/internal/questions"
	"go.uber.org/zap"
)

// errReported marks a failure whose message was already printed; main only
// sets the exit code.
var errReported = errors.New("failure already reported")

type options struct {
	configPath string
	out        string
	debug      bool
	strict     bool
}

func (o *options) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.out, "out", "o", config.DefaultOutputPath, "report file to write")
	cmd.Flags().StringVar(&o.configPath, "config", "", "YAML config file (flags set explicitly take precedence)")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "enable debug logging on stderr")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "exit with status 1 when extraction fails")
}

// load returns the config file settings (or defaults) with explicitly set
// flags and environment applied on top.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		c, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	cfg.ApplyEnv()
	if cmd.Flags().Changed("out") {
		cfg.OutputPath = o.out
	}
	if o.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func (o *options) logger(cfg *config.Config) (*zap.Logger, error) {
	l, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logging.WithRun(l), nil
}

// printOutcome writes the single result line to stdout.
func (o *options) printOutcome(cmd *cobra.Command, res questions.Result, err error) error {
	out := cmd.OutOrStdout()
	if err != nil {
		fmt.Fprintf(out, "Error processing PDF: %v\n", err)
		if o.strict {
			return errReported
		}
		return nil
	}
	fmt.Fprintf(out, "Successfully extracted %d math questions to %s\n", res.Count, res.OutputPath)
	return nil
}
