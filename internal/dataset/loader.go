package dataset

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"unicode"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	apperrors "medinsight/internal/errors"
)

// Load reads the raw CSV at path into a string-typed dataframe. When the
// first line contains a digit the file is treated as headerless and the
// canonical column names are applied; otherwise the file's own header is
// kept and checked against the canonical set.
func Load(path string) (dataframe.DataFrame, error) {
	hasHeader, err := sniffHeader(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, apperrors.NewParsingError("open dataset file", err).WithContext("path", path)
	}
	defer file.Close()

	// Types are resolved during cleaning, so everything loads as strings
	// and malformed cells survive until imputation can deal with them.
	opts := []dataframe.LoadOption{
		dataframe.HasHeader(hasHeader),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	}
	if !hasHeader {
		opts = append(opts, dataframe.Names(Columns...))
	}

	df := dataframe.ReadCSV(bufio.NewReader(file), opts...)
	if df.Error() != nil {
		return dataframe.DataFrame{}, apperrors.NewParsingError("read dataset csv", df.Error()).WithContext("path", path)
	}

	if err := checkColumns(df); err != nil {
		return dataframe.DataFrame{}, err
	}

	slog.Info("dataset loaded",
		slog.String("path", path),
		slog.Bool("header", hasHeader),
		slog.Int("rows", df.Nrow()),
		slog.Int("cols", df.Ncol()))

	return df, nil
}

// sniffHeader reports whether the first line of the file looks like a header
// row. A line containing any digit is taken as data.
func sniffHeader(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, apperrors.NewParsingError("open dataset file", err).WithContext("path", path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, apperrors.NewParsingError("read first line", err)
		}
		return false, apperrors.NewParsingError("dataset file is empty", nil).WithContext("path", path)
	}

	for _, r := range scanner.Text() {
		if unicode.IsDigit(r) {
			return false, nil
		}
	}
	return true, nil
}

func checkColumns(df dataframe.DataFrame) error {
	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}
	for _, name := range Columns {
		if !present[name] {
			return apperrors.NewParsingError(
				fmt.Sprintf("dataset is missing required column %q", name), nil)
		}
	}
	return nil
}
