package main

import (
	"github.com/spf13/cobra"
	"github.com/thywilljoshua/mathq/internal/config"
	"github.com/thywilljoshua/mathq/internal/questions"
	"go.uber.org/zap"
)

func extractCmd() *cobra.Command {
	var opts options
	var pages int
	var reader string

	cmd := &cobra.Command{
		Use:   "extract <pdf>",
		Short: "Find math questions in the leading pages of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return opts.printOutcome(cmd, questions.Result{}, err)
			}
			if cmd.Flags().Changed("pages") {
				cfg.PageLimit = &pages
			}
			if cmd.Flags().Changed("reader") {
				cfg.Reader = reader
			}
			logger, err := opts.logger(cfg)
			if err != nil {
				return opts.printOutcome(cmd, questions.Result{}, err)
			}
			defer func() { _ = logger.Sync() }()

			res, err := questions.Extract(cmd.Context(), args[0], questions.Config{
				OutputPath: cfg.OutputPath,
				PageLimit:  cfg.Pages(),
				Reader:     cfg.Reader,
				Logger:     logger,
			})
			if err != nil {
				logger.Warn("extraction failed", zap.String("document", args[0]), zap.Error(err))
			}
			return opts.printOutcome(cmd, res, err)
		},
	}
	opts.bind(cmd)
	cmd.Flags().IntVarP(&pages, "pages", "n", config.DefaultPageLimit, "scan at most N leading pages")
	cmd.Flags().StringVar(&reader, "reader", config.DefaultReader, "PDF text backend: rsc|ledongthuc")
	return cmd
}
