package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/slope/internal/domain"
	"github.com/aalvaropc/slope/internal/infra/jsonreport"
	"github.com/aalvaropc/slope/internal/infra/logger"
	"github.com/aalvaropc/slope/internal/presentation"
	"github.com/aalvaropc/slope/internal/usecase"
)

// pointValue is a cobra flag holding "x,y".
type pointValue struct {
	p *domain.Point
}

func (v pointValue) String() string {
	if v.p == nil {
		return ""
	}
	return domain.FormatCoord(v.p.X) + "," + domain.FormatCoord(v.p.Y)
}

func (v pointValue) Set(s string) error {
	p, err := domain.ParsePoint(s)
	if err != nil {
		return err
	}
	*v.p = p
	return nil
}

func (v pointValue) Type() string { return "x,y" }

func calcCmd(root *rootOptions) *cobra.Command {
	var p1, p2 domain.Point
	var format string
	var chartPath string
	var queries []string
	var noGuide bool

	c := &cobra.Command{
		Use:   "calc",
		Short: "Compute slope, line equation, classification and distance for two points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "pretty" && format != "json" && format != "" {
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}

			cfg, logRoot, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}

			// One-shot runs only write a log file when asked to.
			if root.debug {
				cleanup, _ := logger.Setup(logger.Config{Root: logRoot, Debug: true})
				if cleanup != nil {
					defer func() { _ = cleanup() }()
				}
			}
			log := logger.L()

			if !cmd.Flags().Changed("p1") {
				p1 = cfg.Defaults.P1
			}
			if !cmd.Flags().Changed("p2") {
				p2 = cfg.Defaults.P2
			}

			uc := usecase.NewAnalyze(
				usecase.WithChartOptions(presentation.ChartOptionsFrom(cfg.Chart)),
				usecase.WithLogger(log),
			)
			res := uc.Execute(usecase.Input{P1: p1, P2: p2, ShowChart: chartPath != ""})

			doc := jsonreport.Build(res.Analysis, res.Report)
			if chartPath != "" {
				if err := newExporter(cfg, log).Execute(cmd.Context(), *res.Chart, chartPath); err != nil {
					return err
				}
				doc.Chart = chartPath
			}

			out := cmd.OutOrStdout()
			if len(queries) > 0 {
				return printQueries(out, doc, queries)
			}
			return printCalc(out, doc, res.Report, format, !noGuide)
		},
	}

	c.Flags().Var(pointValue{&p1}, "p1", "first point as x,y (defaults to slope.defaults.p1)")
	c.Flags().Var(pointValue{&p2}, "p2", "second point as x,y (defaults to slope.defaults.p2)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&chartPath, "chart", "", "write the chart image to this path (.png, .svg, .pdf, ...)")
	c.Flags().StringArrayVarP(&queries, "query", "q", nil, "print a single field of the JSON report, e.g. $.slope (repeatable)")
	c.Flags().BoolVar(&noGuide, "no-guide", false, "omit the classification guide in pretty output")
	return c
}

func printCalc(w io.Writer, doc jsonreport.Document, r presentation.Report, format string, guide bool) error {
	switch format {
	case "json":
		return jsonreport.Encode(w, doc)
	case "pretty", "":
		if err := presentation.WriteText(w, r, presentation.TextOptions{Guide: guide}); err != nil {
			return err
		}
		if doc.Chart != "" {
			fmt.Fprintf(w, "\nChart written to %s\n", doc.Chart)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printQueries(w io.Writer, doc jsonreport.Document, queries []string) error {
	for _, q := range queries {
		v, err := jsonreport.QueryDocument(doc, q)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
	}
	return nil
}
