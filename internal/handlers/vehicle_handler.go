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

type VehicleRequest struct {
	Plate string `json:"plate"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	Color string `json:"color"`
}

func ListVehicles(c *gin.Context) {
	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var vehicles []models.Vehicle
	if err := gormDB.Order("created_at desc").Find(&vehicles).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving vehicles.")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	plate := models.NormalizePlate(req.Plate)
	errs := validation.ValidateVehicle(validation.VehicleCandidate{
		Plate: plate,
		Make:  req.Make,
		Model: req.Model,
		Year:  req.Year,
		Color: req.Color,
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

	vehicle := models.Vehicle{
		Plate:  plate,
		Make:   req.Make,
		Model:  req.Model,
		Year:   req.Year,
		Color:  req.Color,
		Active: true,
	}

	if err := gormDB.Create(&vehicle).Error; err != nil {
		if services.IsDuplicateKey(err) {
			helpers.RespondWithError(c, http.StatusConflict, "A vehicle with this plate already exists.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to register vehicle.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vehicle registered successfully.",
		"vehicle": vehicle,
	})
}

func SearchVehicle(c *gin.Context) {
	plate := models.NormalizePlate(c.Param("plate"))

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var vehicle models.Vehicle
	if err := gormDB.Where("plate = ?", plate).First(&vehicle).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Vehicle not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving vehicle.")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func DeleteVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle ID format.")
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	result := gormDB.Where("id = ?", vehicleID).Delete(&models.Vehicle{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete vehicle.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Vehicle not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully."})
}
