package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gbenitez/multatrack/internal/helpers"
	"github.com/gbenitez/multatrack/internal/middleware"
	"github.com/gbenitez/multatrack/internal/services"
)

func DashboardStats(c *gin.Context) {
	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	stats, err := services.NewStatsService(gormDB).Dashboard(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error computing dashboard stats.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
