package analysis

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"medinsight/internal/dataset"
	apperrors "medinsight/internal/errors"
)

// GroupStat aggregates charges over one group of a categorical column.
type GroupStat struct {
	Group  string  `json:"group"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// GroupCharges aggregates charges by the groups of the given column. For
// labeled columns (sex, smoker, region) the groups carry their labels in
// code order; for children the groups are the counts in ascending order.
func GroupCharges(ds *dataset.Dataset, column string) ([]GroupStat, error) {
	keys, err := ds.Column(column)
	if err != nil {
		return nil, apperrors.NewAnalysisError("group column", err)
	}
	charges, err := ds.Column(dataset.ColCharges)
	if err != nil {
		return nil, apperrors.NewAnalysisError("charges column", err)
	}

	grouped := make(map[int][]float64)
	for i, k := range keys {
		code := int(k)
		grouped[code] = append(grouped[code], charges[i])
	}

	codes := make([]int, 0, len(grouped))
	for code := range grouped {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	stats := make([]GroupStat, 0, len(codes))
	for _, code := range codes {
		values := grouped[code]

		name, ok := dataset.LabelFor(column, code)
		if !ok {
			name = strconv.Itoa(code)
		}

		gs := GroupStat{
			Group:  name,
			Count:  len(values),
			Mean:   stat.Mean(values, nil),
			Min:    values[0],
			Max:    values[0],
		}
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)
		gs.Median = percentileSorted(sorted, 50)
		gs.Min = sorted[0]
		gs.Max = sorted[len(sorted)-1]
		if len(values) > 1 {
			gs.Std = stat.StdDev(values, nil)
		}
		stats = append(stats, gs)
	}

	return stats, nil
}

// splitBy partitions values by the integer code of the parallel keys column.
func splitBy(values, keys []float64) map[int][]float64 {
	out := make(map[int][]float64)
	for i, k := range keys {
		code := int(k)
		out[code] = append(out[code], values[i])
	}
	return out
}
