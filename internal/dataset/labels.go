package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// labelMappings maps integer codes to human-readable labels for the coded
// categorical columns. The maps are bijective on the defined codes.
var labelMappings = map[string]map[int]string{
	ColSex:    {1: "male", 2: "female"},
	ColSmoker: {0: "no", 1: "yes"},
	ColRegion: {1: "northeast", 2: "northwest", 3: "southeast", 4: "southwest"},
}

// LabeledColumns lists the columns that have a label mapping, in file order.
var LabeledColumns = []string{ColSex, ColSmoker, ColRegion}

// LabelFor returns the label for a column code, and whether it is defined.
func LabelFor(column string, code int) (string, bool) {
	mapping, ok := labelMappings[column]
	if !ok {
		return "", false
	}
	label, ok := mapping[code]
	return label, ok
}

// CodeFor returns the code for a column label, and whether it is defined.
func CodeFor(column, label string) (int, bool) {
	mapping, ok := labelMappings[column]
	if !ok {
		return 0, false
	}
	for code, l := range mapping {
		if l == label {
			return code, true
		}
	}
	return 0, false
}

// LabelValues returns the labels defined for a column, ordered by code.
func LabelValues(column string) []string {
	mapping, ok := labelMappings[column]
	if !ok {
		return nil
	}
	minCode, maxCode := 0, 0
	for code := range mapping {
		if code < minCode {
			minCode = code
		}
		if code > maxCode {
			maxCode = code
		}
	}
	labels := make([]string, 0, len(mapping))
	for code := minCode; code <= maxCode; code++ {
		if label, ok := mapping[code]; ok {
			labels = append(labels, label)
		}
	}
	return labels
}

// Labels returns the per-row labels for a coded column. Codes with no defined
// label come back as "unknown"; cleaning guarantees that does not happen for
// in-range data.
func (d *Dataset) Labels(column string) ([]string, error) {
	col, err := d.Column(column)
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(col))
	for i, v := range col {
		label, ok := LabelFor(column, int(v))
		if !ok {
			label = "unknown"
		}
		labels[i] = label
	}
	return labels, nil
}

// LabeledFrame returns the cleaned dataframe extended with <column>_label
// columns for sex, smoker and region.
func (d *Dataset) LabeledFrame() (dataframe.DataFrame, error) {
	df := d.Frame()
	for _, column := range LabeledColumns {
		labels, err := d.Labels(column)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		df = df.Mutate(series.New(labels, series.String, column+"_label"))
		if df.Error() != nil {
			return dataframe.DataFrame{}, df.Error()
		}
	}
	return df, nil
}
