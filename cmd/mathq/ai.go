package main

import (
	"github.com/spf13/cobra"
	"github.com/thywilljoshua/mathq/internal/ai"
	"github.com/thywilljoshua/mathq/internal/questions"
	"go.uber.org/zap"
)

func aiCmd() *cobra.Command {
	var opts options
	var model string

	cmd := &cobra.Command{
		Use:   "ai <image|pdf>",
		Short: "Read multiple-choice math questions from an image or PDF with Gemini",
		Long:  "Sends the whole file to Gemini and writes the questions and their options. Requires GOOGLE_API_KEY or ai.api_key in the config file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return opts.printOutcome(cmd, questions.Result{}, err)
			}
			if cmd.Flags().Changed("model") {
				cfg.AI.Model = model
			}
			logger, err := opts.logger(cfg)
			if err != nil {
				return opts.printOutcome(cmd, questions.Result{}, err)
			}
			defer func() { _ = logger.Sync() }()

			g, err := ai.NewGemini(cmd.Context(), cfg.AI.APIKey, cfg.AI.Model)
			if err != nil {
				return opts.printOutcome(cmd, questions.Result{}, err)
			}
			res, err := questions.ExtractChoices(cmd.Context(), args[0], questions.Config{
				OutputPath: cfg.OutputPath,
				Parser:     g,
				Logger:     logger.With(zap.String("model", g.Model())),
			})
			if err != nil {
				logger.Warn("ai extraction failed", zap.String("document", args[0]), zap.Error(err))
			}
			return opts.printOutcome(cmd, res, err)
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVar(&model, "model", ai.DefaultModel, "Gemini model")
	return cmd
}
