package validation

import "strings"

type DriverCandidate struct {
	Name    string
	Email   string
	DNI     string
	License string
}

// ValidateDriver checks a registration candidate and returns every violation.
func ValidateDriver(candidate DriverCandidate) Errors {
	var errs Errors

	if len(candidate.Name) < 3 {
		errs = append(errs, FieldError{"name", "name must be at least 3 characters"})
	}
	if !strings.Contains(candidate.Email, "@") {
		errs = append(errs, FieldError{"email", "a valid email is required"})
	}
	if len(candidate.DNI) < 7 {
		errs = append(errs, FieldError{"dni", "a valid DNI is required"})
	}
	if len(candidate.License) < 5 {
		errs = append(errs, FieldError{"license", "a valid license number is required"})
	}

	return errs
}
