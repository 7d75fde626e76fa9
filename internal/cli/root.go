package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/slope/internal/infra/logger"
	"github.com/aalvaropc/slope/internal/presentation"
	"github.com/aalvaropc/slope/internal/ui/tui"
	"github.com/aalvaropc/slope/internal/usecase"
)

type rootOptions struct {
	debug      bool
	configPath string
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "slope",
		Short:        "Slope between two points: line equation, classification, distance and chart",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, root, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  root,
				Debug: opts.debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			log := logger.L()
			log.Info("tui.start", "root", root, "debug", opts.debug)

			deps := tui.Deps{
				Analyzer: usecase.NewAnalyze(
					usecase.WithChartOptions(presentation.ChartOptionsFrom(cfg.Chart)),
					usecase.WithLogger(log),
				),
				Exporter: newExporter(cfg, log),
				Config:   cfg,
				Logger:   log,
				Debug:    opts.debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .slope/logs/slope.log")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to slope.yaml (optional; searched upward from the working directory)")

	cmd.AddCommand(calcCmd(opts))
	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
