package validation

import "time"

type VehicleCandidate struct {
	Plate string
	Make  string
	Model string
	Year  int
	Color string
}

// ValidateVehicle checks a registration candidate and returns every violation.
// The year ceiling allows next year's models.
func ValidateVehicle(candidate VehicleCandidate) Errors {
	var errs Errors

	if len(candidate.Plate) < 6 {
		errs = append(errs, FieldError{"plate", "plate must be at least 6 characters"})
	}
	if len(candidate.Make) < 2 {
		errs = append(errs, FieldError{"make", "make is required"})
	}
	if len(candidate.Model) < 1 {
		errs = append(errs, FieldError{"model", "model is required"})
	}
	if maxYear := time.Now().Year() + 1; candidate.Year < 1900 || candidate.Year > maxYear {
		errs = append(errs, FieldError{"year", "year must be valid"})
	}
	if len(candidate.Color) < 2 {
		errs = append(errs, FieldError{"color", "color is required"})
	}

	return errs
}
