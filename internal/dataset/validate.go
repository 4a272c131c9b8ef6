package dataset

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "medinsight/internal/errors"
)

var validate = validator.New()

// Validate checks every cleaned record against the Policy schema: codes in
// range, non-negative BMI and charges. It reports the first few violations
// rather than flooding the caller.
func (d *Dataset) Validate() error {
	const maxReported = 5

	var violations []string
	for i, p := range d.Policies() {
		if err := validate.Struct(p); err != nil {
			violations = append(violations, fmt.Sprintf("row %d: %v", i, err))
			if len(violations) == maxReported {
				break
			}
		}
	}

	if len(violations) > 0 {
		return apperrors.NewValidationError(
			fmt.Sprintf("%d invalid record(s), first: %s", len(violations), violations[0]), nil)
	}
	return nil
}
