package exporter

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"

	"medinsight/internal/dataset"
	apperrors "medinsight/internal/errors"
)

// Output file names, matching the fixed set the pipeline promises.
const (
	CleanedCSVFile = "medical_insurance_cleaned.csv"
	LabeledCSVFile = "medical_insurance_labeled.csv"
	WorkbookFile   = "analysis_results.xlsx"
	SummaryFile    = "analysis_summary.txt"
	ReportJSONFile = "analysis_results.json"
)

// utf8BOM helps Excel recognize UTF-8 encoded CSV files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Exporter writes the output file set into a directory.
type Exporter struct {
	logger *slog.Logger
	outDir string
	bom    bool
}

// New creates an Exporter. A nil logger falls back to slog.Default.
func New(logger *slog.Logger, outDir string, bom bool) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{logger: logger, outDir: outDir, bom: bom}
}

// WriteCleanedCSV exports the cleaned dataset with numeric category codes.
func (e *Exporter) WriteCleanedCSV(ds *dataset.Dataset) (string, error) {
	return e.writeFrameCSV(ds.Frame(), CleanedCSVFile)
}

// WriteLabeledCSV exports the cleaned dataset extended with label columns
// for sex, smoker and region.
func (e *Exporter) WriteLabeledCSV(ds *dataset.Dataset) (string, error) {
	df, err := ds.LabeledFrame()
	if err != nil {
		return "", err
	}
	return e.writeFrameCSV(df, LabeledCSVFile)
}

func (e *Exporter) writeFrameCSV(df dataframe.DataFrame, name string) (string, error) {
	path := filepath.Join(e.outDir, name)
	e.logger.Info("writing CSV file",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", df.Ncol()))

	if err := os.MkdirAll(e.outDir, 0755); err != nil {
		return "", apperrors.NewStorageError("create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", apperrors.NewStorageError("create CSV file", err).WithContext("path", path)
	}
	defer file.Close()

	if e.bom {
		if _, err := file.Write(utf8BOM); err != nil {
			return "", apperrors.NewStorageError("write BOM", err).WithContext("path", path)
		}
	}

	if err := df.WriteCSV(file); err != nil {
		return "", apperrors.NewStorageError("write CSV data", err).WithContext("path", path)
	}
	return path, nil
}
