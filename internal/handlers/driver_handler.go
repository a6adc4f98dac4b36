package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gbenitez/multatrack/internal/helpers"
	"github.com/gbenitez/multatrack/internal/middleware"
	"github.com/gbenitez/multatrack/internal/models"
	"github.com/gbenitez/multatrack/internal/services"
	"github.com/gbenitez/multatrack/internal/validation"
)

type DriverRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	DNI     string `json:"dni"`
	License string `json:"license"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func ListDrivers(c *gin.Context) {
	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var drivers []models.Driver
	if err := gormDB.Order("created_at desc").Find(&drivers).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving drivers.")
		return
	}

	c.JSON(http.StatusOK, drivers)
}

func CreateDriver(c *gin.Context) {
	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	errs := validation.ValidateDriver(validation.DriverCandidate{
		Name:    req.Name,
		Email:   req.Email,
		DNI:     req.DNI,
		License: req.License,
	})
	if len(errs) > 0 {
		helpers.RespondWithValidationErrors(c, errs)
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	driver := models.Driver{
		Name:    req.Name,
		Email:   req.Email,
		DNI:     req.DNI,
		License: req.License,
		Phone:   req.Phone,
		Address: req.Address,
		Points:  models.InitialPoints,
		Enabled: true,
	}

	if err := gormDB.Create(&driver).Error; err != nil {
		if services.IsDuplicateKey(err) {
			helpers.RespondWithError(c, http.StatusConflict, "A driver with this DNI, email or license already exists.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create driver.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Driver registered successfully.",
		"driver":  driver,
	})
}

func SearchDriver(c *gin.Context) {
	dni := c.Param("dni")

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var driver models.Driver
	if err := gormDB.Where("dni = ?", dni).First(&driver).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Driver not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving driver.")
		return
	}

	c.JSON(http.StatusOK, driver)
}

func DeleteDriver(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid driver ID format.")
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	// Hard delete. Tickets reference the driver by DNI value and stay behind.
	result := gormDB.Where("id = ?", driverID).Delete(&models.Driver{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete driver.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Driver not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted successfully."})
}
