package validation

import (
	"strings"
	"testing"
	"time"
)

func TestValidateDriverValid(t *testing.T) {
	errs := ValidateDriver(DriverCandidate{
		Name:    "Juan Perez",
		Email:   "juan@example.com",
		DNI:     "12345678",
		License: "B12345",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateDriverCollectsAllViolations(t *testing.T) {
	errs := ValidateDriver(DriverCandidate{Name: "Jo", Email: "not-an-email", DNI: "123", License: "B1"})
	if len(errs) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(errs), errs)
	}
	for _, want := range []string{"name", "email", "dni", "license"} {
		found := false
		for _, fieldError := range errs {
			if fieldError.Field == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected a violation on %q, got %v", want, errs)
		}
	}
}

func TestValidateVehicle(t *testing.T) {
	errs := ValidateVehicle(VehicleCandidate{
		Plate: "ABC123",
		Make:  "Toyota",
		Model: "Corolla",
		Year:  2020,
		Color: "Gris",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	if errs = ValidateVehicle(VehicleCandidate{Plate: "AB1", Make: "T", Year: 1899, Color: "G"}); len(errs) != 5 {
		t.Fatalf("expected 5 violations, got %d: %v", len(errs), errs)
	}
}

func TestValidateVehicleYearBounds(t *testing.T) {
	nextYear := time.Now().Year() + 1
	candidate := VehicleCandidate{Plate: "ABC123", Make: "Ford", Model: "Ka", Year: nextYear, Color: "Rojo"}
	if errs := ValidateVehicle(candidate); len(errs) != 0 {
		t.Fatalf("next year's model should be valid, got %v", errs)
	}
	candidate.Year = nextYear + 1
	if errs := ValidateVehicle(candidate); len(errs) != 1 || errs[0].Field != "year" {
		t.Fatalf("expected a single year violation, got %v", errs)
	}
}

func TestValidateTicket(t *testing.T) {
	errs := ValidateTicket(TicketCandidate{
		DriverDNI: "12345678",
		Plate:     "ABC123",
		Reason:    "Exceso de velocidad",
		Amount:    15000,
		Severity:  "media",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	if errs = ValidateTicket(TicketCandidate{Amount: -1}); len(errs) != 5 {
		t.Fatalf("expected 5 violations, got %d: %v", len(errs), errs)
	}
}

func TestErrorsJoinsMessages(t *testing.T) {
	errs := Errors{{"a", "first"}, {"b", "second"}}
	if msg := errs.Error(); !strings.Contains(msg, "first") || !strings.Contains(msg, "second") {
		t.Fatalf("joined message missing parts: %q", msg)
	}
}
