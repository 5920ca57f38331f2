package analysis

import (
	"fmt"

	"songstats/internal/dataset"
)

// ValidateYear rejects years outside the dataset's domain before any store
// access happens.
func ValidateYear(year int) error {
	if year < dataset.MinYear || year > dataset.MaxYear {
		return fmt.Errorf("year %d is outside valid range (%d-%d)", year, dataset.MinYear, dataset.MaxYear)
	}
	return nil
}

// ValidateYearRange rejects malformed or out-of-domain year ranges.
func ValidateYearRange(startYear, endYear int) error {
	if err := ValidateYear(startYear); err != nil {
		return err
	}
	if err := ValidateYear(endYear); err != nil {
		return err
	}
	if startYear > endYear {
		return fmt.Errorf("start year %d is after end year %d", startYear, endYear)
	}
	return nil
}
