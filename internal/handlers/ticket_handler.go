package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gbenitez/multatrack/internal/helpers"
	"github.com/gbenitez/multatrack/internal/middleware"
	"github.com/gbenitez/multatrack/internal/models"
	"github.com/gbenitez/multatrack/internal/services"
)

type TicketRequest struct {
	DriverDNI string  `json:"driver_dni"`
	Plate     string  `json:"plate"`
	Reason    string  `json:"reason"`
	Amount    float64 `json:"amount"`
	Severity  string  `json:"severity"`
}

func ticketService(c *gin.Context) *services.TicketService {
	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		return nil
	}
	return services.NewTicketService(services.NewRepo(gormDB))
}

func ListTickets(c *gin.Context) {
	svc := ticketService(c)
	if svc == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	tickets, err := svc.List(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving tickets.")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

func CreateTicket(c *gin.Context) {
	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	svc := ticketService(c)
	if svc == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	result, err := svc.Issue(c.Request.Context(), services.IssueInput{
		DriverDNI: req.DriverDNI,
		Plate:     req.Plate,
		Reason:    req.Reason,
		Amount:    req.Amount,
		Severity:  req.Severity,
	})
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			helpers.RespondWithValidationErrors(c, validationErr.Fields)
		case errors.Is(err, services.ErrDriverNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Driver not found. Check the DNI.")
		case errors.Is(err, services.ErrVehicleNotFound):
			helpers.RespondWithError(c, http.StatusNotFound, "Vehicle not found. Check the plate.")
		default:
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create ticket.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Ticket created successfully.",
		"ticket":  result.Ticket,
		"driver": gin.H{
			"dni":     result.Driver.DNI,
			"points":  result.Driver.Points,
			"enabled": result.Driver.Enabled,
		},
	})
}

func PayTicket(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID format.")
		return
	}

	svc := ticketService(c)
	if svc == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	ticket, err := svc.Pay(c.Request.Context(), ticketID)
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Ticket not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to mark ticket as paid.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket marked as paid.",
		"ticket":  ticket,
	})
}

func ListTicketsByDriver(c *gin.Context) {
	dni := c.Param("dni")

	svc := ticketService(c)
	if svc == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	tickets, err := svc.ListByDriver(c.Request.Context(), dni)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving tickets.")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// Suggested severity and amount per reason, for the issuing form. Advisory
// only; nothing is enforced server-side.
func TicketSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuggestedPenalties)
}
