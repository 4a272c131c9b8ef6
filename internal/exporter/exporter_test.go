package exporter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"medinsight/internal/analysis"
	"medinsight/internal/dataset"
)

const exportFixtureCSV = `age,sex,bmi,children,smoker,region,charges
19,2,27.9,0,1,4,16884.924
18,1,33.77,1,0,3,1725.5523
28,1,33.0,3,0,3,4449.462
33,2,22.705,0,0,2,21984.47061
32,1,28.88,0,0,2,3866.8552
31,2,25.74,0,0,3,3756.6216
46,2,33.44,1,0,3,8240.5896
37,2,27.74,3,0,2,7281.5056
37,1,29.83,2,0,1,6406.4107
60,2,25.84,0,0,2,28923.13692
25,1,26.22,0,0,1,2721.3208
62,2,26.29,0,1,3,27808.7251
23,1,34.4,0,0,4,1826.843
56,2,39.82,0,0,3,11090.7178
27,1,42.13,0,1,3,39611.7577
19,1,24.6,1,0,4,1837.237
52,2,30.78,1,0,1,10797.3362
23,1,23.845,0,0,1,2395.17155
56,1,40.3,0,0,4,10602.385
30,1,35.3,0,1,4,36837.467
`

func exportInputs(t *testing.T) (*dataset.Dataset, *analysis.Report) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.csv")
	require.NoError(t, os.WriteFile(path, []byte(exportFixtureCSV), 0644))

	df, err := dataset.Load(path)
	require.NoError(t, err)
	ds, err := dataset.Clean(df, path)
	require.NoError(t, err)

	report, err := analysis.New(nil, 0.05).Run(context.Background(), ds)
	require.NoError(t, err)
	return ds, report
}

func TestWriteCleanedCSV(t *testing.T) {
	ds, _ := exportInputs(t)
	outDir := t.TempDir()

	path, err := New(nil, outDir, false).WriteCleanedCSV(ds)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, CleanedCSVFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 21)
	assert.Equal(t, "age,sex,bmi,children,smoker,region,charges", lines[0])
	assert.False(t, bytes.HasPrefix(data, utf8BOM))
}

func TestWriteCleanedCSV_BOM(t *testing.T) {
	ds, _ := exportInputs(t)

	path, err := New(nil, t.TempDir(), true).WriteCleanedCSV(ds)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, utf8BOM))
}

func TestWriteLabeledCSV(t *testing.T) {
	ds, _ := exportInputs(t)

	path, err := New(nil, t.TempDir(), false).WriteLabeledCSV(ds)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 21)
	header := strings.Split(lines[0], ",")
	assert.Contains(t, header, "sex_label")
	assert.Contains(t, header, "smoker_label")
	assert.Contains(t, header, "region_label")
	assert.Contains(t, string(data), "southwest")
	assert.Contains(t, string(data), "female")
}

func TestWriteSummary(t *testing.T) {
	_, report := exportInputs(t)

	path, err := New(nil, t.TempDir(), false).WriteSummary(report)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "MEDICAL INSURANCE COST ANALYSIS")
	assert.Contains(t, text, report.RunID)
	assert.Contains(t, text, "Rows:         20")
	assert.Contains(t, text, "STATISTICAL TESTS")
	assert.Contains(t, text, "Strongest charges predictor: smoker")
	assert.Contains(t, text, "significant")
}

func TestWriteWorkbook(t *testing.T) {
	_, report := exportInputs(t)

	path, err := New(nil, t.TempDir(), false).WriteWorkbook(report)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Descriptive", "Correlation", "Groups", "Tests"}, f.GetSheetList())

	rows, err := f.GetRows("Descriptive")
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, "column", rows[0][0])
	assert.Equal(t, "age", rows[1][0])

	corr, err := f.GetRows("Correlation")
	require.NoError(t, err)
	require.Len(t, corr, 8)

	tests, err := f.GetRows("Tests")
	require.NoError(t, err)
	require.Len(t, tests, 4)
}

func TestWriteCleanedCSV_BadDir(t *testing.T) {
	ds, _ := exportInputs(t)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := New(nil, filepath.Join(blocker, "out"), false).WriteCleanedCSV(ds)
	assert.Error(t, err)
}
