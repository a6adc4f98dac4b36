package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gbenitez/multatrack/internal/validation"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithValidationErrors returns 400 with the joined message plus the
// structured field list so clients can highlight inputs.
func RespondWithValidationErrors(c *gin.Context, errs validation.Errors) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   http.StatusText(http.StatusBadRequest),
		"message": errs.Error(),
		"fields":  errs,
	})
}
