package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "medinsight/internal/errors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "insurance.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_WithHeader(t *testing.T) {
	path := writeTempCSV(t, "age,sex,bmi,children,smoker,region,charges\n19,2,27.9,0,1,4,16884.924\n18,1,33.77,1,0,3,1725.5523\n")

	df, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, df.Nrow())
	assert.ElementsMatch(t, Columns, df.Names())
}

func TestLoad_WithoutHeader(t *testing.T) {
	// First line contains digits, so the file is treated as headerless and
	// the canonical names are applied.
	path := writeTempCSV(t, "19,2,27.9,0,1,4,16884.924\n18,1,33.77,1,0,3,1725.5523\n60,2,25.84,0,0,2,28923.13692\n")

	df, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, df.Nrow())
	assert.Equal(t, Columns, df.Names())
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, "age,sex,bmi\nx,y,z\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), "children")
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "age,sex,bmi,children,smoker,region,charges\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestSniffHeader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"plain header", "age,sex,bmi,children,smoker,region,charges\n", true},
		{"data row", "19,2,27.9,0,1,4,16884.924\n", false},
		{"header with digit", "age,sex,bmi2,children,smoker,region,charges\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.content)
			got, err := sniffHeader(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
