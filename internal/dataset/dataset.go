// Package dataset handles acquisition, loading and cleaning of the medical
// insurance dataset. The cleaned dataset is the input to every downstream
// stage: statistics, charts and file exports.
package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Canonical column names, in file order.
const (
	ColAge      = "age"
	ColSex      = "sex"
	ColBMI      = "bmi"
	ColChildren = "children"
	ColSmoker   = "smoker"
	ColRegion   = "region"
	ColCharges  = "charges"
)

// Columns lists the seven canonical columns in file order.
var Columns = []string{ColAge, ColSex, ColBMI, ColChildren, ColSmoker, ColRegion, ColCharges}

// NumericColumns are cleaned with median imputation.
var NumericColumns = []string{ColAge, ColBMI, ColCharges}

// CategoricalColumns are integer-coded and cleaned with mode imputation.
var CategoricalColumns = []string{ColSex, ColChildren, ColSmoker, ColRegion}

// Policy is a single cleaned insurance record.
type Policy struct {
	Age      int     `validate:"gte=0,lte=120"`
	Sex      int     `validate:"oneof=1 2"`
	BMI      float64 `validate:"gt=0"`
	Children int     `validate:"gte=0"`
	Smoker   int     `validate:"oneof=0 1"`
	Region   int     `validate:"gte=1,lte=4"`
	Charges  float64 `validate:"gte=0"`
}

// Dataset is the cleaned, in-memory record set plus provenance metadata.
type Dataset struct {
	// Source is the path or URL the raw data came from.
	Source string
	// Imputed counts the values filled per column during cleaning.
	Imputed map[string]int

	rows    int
	columns map[string][]float64
}

// Rows returns the number of records.
func (d *Dataset) Rows() int {
	return d.rows
}

// Column returns the values of a canonical column as float64s. Integer-coded
// columns are returned as whole floats.
func (d *Dataset) Column(name string) ([]float64, error) {
	col, ok := d.columns[name]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	return col, nil
}

// TotalImputed returns the total number of values filled during cleaning.
func (d *Dataset) TotalImputed() int {
	total := 0
	for _, n := range d.Imputed {
		total += n
	}
	return total
}

// Policies materializes the dataset as typed records.
func (d *Dataset) Policies() []Policy {
	policies := make([]Policy, d.rows)
	for i := 0; i < d.rows; i++ {
		policies[i] = Policy{
			Age:      int(d.columns[ColAge][i]),
			Sex:      int(d.columns[ColSex][i]),
			BMI:      d.columns[ColBMI][i],
			Children: int(d.columns[ColChildren][i]),
			Smoker:   int(d.columns[ColSmoker][i]),
			Region:   int(d.columns[ColRegion][i]),
			Charges:  d.columns[ColCharges][i],
		}
	}
	return policies
}

// Frame rebuilds the cleaned dataset as a gota dataframe for export.
func (d *Dataset) Frame() dataframe.DataFrame {
	ss := make([]series.Series, 0, len(Columns))
	for _, name := range Columns {
		switch name {
		case ColBMI, ColCharges:
			ss = append(ss, series.New(d.columns[name], series.Float, name))
		default:
			ints := make([]int, d.rows)
			for i, v := range d.columns[name] {
				ints[i] = int(v)
			}
			ss = append(ss, series.New(ints, series.Int, name))
		}
	}
	return dataframe.New(ss...)
}
