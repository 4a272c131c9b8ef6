// Command medinsight runs the full medical insurance analysis pipeline:
// fetch or load the dataset, clean it, compute the statistics, render
// the charts and write the export files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"medinsight/internal/analysis"
	"medinsight/internal/chart"
	"medinsight/internal/config"
	"medinsight/internal/dataset"
	"medinsight/internal/exporter"
	"medinsight/internal/infrastructure"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	src := flag.String("src", "", "path to the input CSV (overrides config)")
	url := flag.String("url", "", "URL to download the dataset from (overrides config)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	bins := flag.Int("bins", 0, "histogram bin count (overrides config)")
	skipCharts := flag.Bool("skip-charts", false, "skip PNG chart rendering")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *src != "" {
		cfg.Dataset.Path = *src
	}
	if *url != "" {
		cfg.Dataset.URL = *url
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *bins > 0 {
		cfg.Analysis.HistogramBins = *bins
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if err := run(context.Background(), logger, cfg, *skipCharts); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, skipCharts bool) error {
	srcPath := cfg.Dataset.Path
	if cfg.Dataset.URL != "" {
		srcPath = cfg.Dataset.DownloadPath
		if srcPath == "" {
			srcPath = filepath.Join(cfg.Output.Dir, "medical_insurance.csv")
		}
		logger.InfoContext(ctx, "downloading dataset",
			slog.String("url", cfg.Dataset.URL),
			slog.String("path", srcPath))
		size, err := dataset.Fetch(ctx, cfg.Dataset.URL, srcPath)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "dataset downloaded", slog.Int64("bytes", size))
	}

	logger.InfoContext(ctx, "loading dataset", slog.String("path", srcPath))
	df, err := dataset.Load(srcPath)
	if err != nil {
		return err
	}

	ds, err := dataset.Clean(df, srcPath)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "dataset cleaned",
		slog.Int("rows", ds.Rows()),
		slog.Int("imputed_values", ds.TotalImputed()))

	if err := ds.Validate(); err != nil {
		return err
	}

	analyzer := analysis.New(logger, cfg.Analysis.Alpha)
	report, err := analyzer.Run(ctx, ds)
	if err != nil {
		return err
	}
	ctx = infrastructure.WithRunID(ctx, report.RunID)

	exp := exporter.New(logger, cfg.Output.Dir, cfg.Output.ExcelBOM)
	if _, err := exp.WriteCleanedCSV(ds); err != nil {
		return err
	}
	if _, err := exp.WriteLabeledCSV(ds); err != nil {
		return err
	}
	reportPath := filepath.Join(cfg.Output.Dir, exporter.ReportJSONFile)
	if err := report.WriteJSON(reportPath); err != nil {
		return err
	}
	if _, err := exp.WriteSummary(report); err != nil {
		return err
	}
	if _, err := exp.WriteWorkbook(report); err != nil {
		return err
	}

	if skipCharts {
		logger.InfoContext(ctx, "chart rendering skipped")
	} else {
		renderer := chart.NewRenderer(logger, cfg.Output.Dir, cfg.Analysis.HistogramBins)
		if _, err := renderer.RenderAll(ctx, ds, report); err != nil {
			return err
		}
	}

	logger.InfoContext(ctx, "pipeline complete",
		slog.String("run_id", report.RunID),
		slog.String("output_dir", cfg.Output.Dir),
		slog.String("strongest_predictor", report.Insights.StrongestPredictor))
	fmt.Printf("Analysis complete. Results written to %s (run %s)\n", cfg.Output.Dir, report.RunID)
	return nil
}
