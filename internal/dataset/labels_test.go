package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelMappingsBijective(t *testing.T) {
	for _, column := range LabeledColumns {
		mapping := labelMappings[column]

		seen := make(map[string]bool, len(mapping))
		for code, label := range mapping {
			assert.False(t, seen[label], "column %s: duplicate label %q", column, label)
			seen[label] = true

			// Round-trip code -> label -> code.
			got, ok := CodeFor(column, label)
			require.True(t, ok, "column %s label %q", column, label)
			assert.Equal(t, code, got)
		}
	}
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		column string
		code   int
		want   string
		wantOK bool
	}{
		{ColSex, 1, "male", true},
		{ColSex, 2, "female", true},
		{ColSmoker, 0, "no", true},
		{ColSmoker, 1, "yes", true},
		{ColRegion, 1, "northeast", true},
		{ColRegion, 4, "southwest", true},
		{ColRegion, 5, "", false},
		{ColAge, 1, "", false},
	}

	for _, tt := range tests {
		got, ok := LabelFor(tt.column, tt.code)
		assert.Equal(t, tt.wantOK, ok, "%s/%d", tt.column, tt.code)
		assert.Equal(t, tt.want, got, "%s/%d", tt.column, tt.code)
	}
}

func TestLabelValues(t *testing.T) {
	assert.Equal(t, []string{"male", "female"}, LabelValues(ColSex))
	assert.Equal(t, []string{"no", "yes"}, LabelValues(ColSmoker))
	assert.Equal(t, []string{"northeast", "northwest", "southeast", "southwest"}, LabelValues(ColRegion))
	assert.Nil(t, LabelValues(ColBMI))
}

func TestDataset_Labels(t *testing.T) {
	ds := loadAndClean(t, `age,sex,bmi,children,smoker,region,charges
19,2,27.9,0,1,4,16884.924
18,1,33.77,1,0,3,1725.5523
`)

	labels, err := ds.Labels(ColSmoker)
	require.NoError(t, err)
	assert.Equal(t, []string{"yes", "no"}, labels)

	labels, err = ds.Labels(ColRegion)
	require.NoError(t, err)
	assert.Equal(t, []string{"southwest", "southeast"}, labels)

	_, err = ds.Labels("bogus")
	assert.Error(t, err)
}

func TestDataset_LabeledFrame(t *testing.T) {
	ds := loadAndClean(t, `age,sex,bmi,children,smoker,region,charges
19,2,27.9,0,1,4,16884.924
18,1,33.77,1,0,3,1725.5523
`)

	df, err := ds.LabeledFrame()
	require.NoError(t, err)

	want := append(append([]string{}, Columns...), "sex_label", "smoker_label", "region_label")
	assert.Equal(t, want, df.Names())
	assert.Equal(t, 2, df.Nrow())

	sexLabels := df.Col("sex_label").Records()
	assert.Equal(t, []string{"female", "male"}, sexLabels)
}
