package dataset

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"

	apperrors "medinsight/internal/errors"
)

// Clean converts the raw string dataframe into a typed Dataset. Numeric
// columns (age, bmi, charges) take the column median for missing or
// unparsable cells; integer-coded categorical columns take the column mode.
// Age is truncated to a whole year after imputation.
func Clean(df dataframe.DataFrame, source string) (*Dataset, error) {
	rows := df.Nrow()
	if rows == 0 {
		return nil, apperrors.NewCleaningError("dataset has no rows", nil)
	}

	ds := &Dataset{
		Source:  source,
		Imputed: make(map[string]int, len(Columns)),
		rows:    rows,
		columns: make(map[string][]float64, len(Columns)),
	}

	for _, name := range NumericColumns {
		col, imputed, err := cleanNumeric(df.Col(name).Records())
		if err != nil {
			return nil, apperrors.NewCleaningError(fmt.Sprintf("clean column %q", name), err)
		}
		if name == ColAge {
			for i, v := range col {
				col[i] = math.Trunc(v)
			}
		}
		ds.columns[name] = col
		ds.Imputed[name] = imputed
	}

	for _, name := range CategoricalColumns {
		col, imputed, err := cleanCategorical(df.Col(name).Records())
		if err != nil {
			return nil, apperrors.NewCleaningError(fmt.Sprintf("clean column %q", name), err)
		}
		ds.columns[name] = col
		ds.Imputed[name] = imputed
	}

	slog.Info("dataset cleaned",
		slog.Int("rows", rows),
		slog.Int("imputed_values", ds.TotalImputed()))

	return ds, nil
}

// isMissing reports whether a raw cell counts as a missing value.
func isMissing(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "?", "na", "n/a", "nan", "null":
		return true
	}
	return false
}

// cleanNumeric parses a numeric column and fills missing cells with the
// median of the parsed values. Unparsable cells count as missing.
func cleanNumeric(records []string) ([]float64, int, error) {
	col := make([]float64, len(records))
	present := make([]float64, 0, len(records))
	missing := make([]int, 0)

	for i, raw := range records {
		if isMissing(raw) {
			missing = append(missing, i)
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) {
			missing = append(missing, i)
			continue
		}
		col[i] = v
		present = append(present, v)
	}

	if len(present) == 0 {
		return nil, 0, fmt.Errorf("no parsable values in column")
	}

	fill := median(present)
	for _, i := range missing {
		col[i] = fill
	}
	return col, len(missing), nil
}

// cleanCategorical parses an integer-coded column and fills missing cells
// with the column mode.
func cleanCategorical(records []string) ([]float64, int, error) {
	col := make([]float64, len(records))
	present := make([]int, 0, len(records))
	missing := make([]int, 0)

	for i, raw := range records {
		if isMissing(raw) {
			missing = append(missing, i)
			continue
		}
		// Codes sometimes arrive as "1.0"; parse as float and truncate.
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) {
			missing = append(missing, i)
			continue
		}
		code := int(math.Trunc(v))
		col[i] = float64(code)
		present = append(present, code)
	}

	if len(present) == 0 {
		return nil, 0, fmt.Errorf("no parsable values in column")
	}

	fill := float64(mode(present))
	for _, i := range missing {
		col[i] = fill
	}
	return col, len(missing), nil
}

// median returns the middle value, averaging the two middles for even
// lengths. The input is not modified.
func median(x []float64) float64 {
	cp := make([]float64, len(x))
	copy(cp, x)
	sort.Float64s(cp)

	mid := len(cp) / 2
	if len(cp)%2 == 0 {
		return (cp[mid-1] + cp[mid]) / 2
	}
	return cp[mid]
}

// mode returns the most frequent value, preferring the smallest value on
// ties so the result is deterministic.
func mode(x []int) int {
	counts := make(map[int]int, len(x))
	for _, v := range x {
		counts[v]++
	}

	best, bestCount := x[0], 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best
}
