package validation

type TicketCandidate struct {
	DriverDNI string
	Plate     string
	Reason    string
	Amount    float64
	Severity  string
}

// ValidateTicket checks an issuance candidate and returns every violation.
func ValidateTicket(candidate TicketCandidate) Errors {
	var errs Errors

	if candidate.DriverDNI == "" {
		errs = append(errs, FieldError{"driver_dni", "driver DNI is required"})
	}
	if len(candidate.Plate) < 6 {
		errs = append(errs, FieldError{"plate", "vehicle plate is required"})
	}
	if len(candidate.Reason) < 5 {
		errs = append(errs, FieldError{"reason", "ticket reason is required"})
	}
	if candidate.Amount <= 0 {
		errs = append(errs, FieldError{"amount", "a positive amount is required"})
	}
	if candidate.Severity == "" {
		errs = append(errs, FieldError{"severity", "severity is required"})
	}

	return errs
}
