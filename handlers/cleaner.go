package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/services/cleaner"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// CleanerHandler exposes cleaner management over HTTP.
type CleanerHandler struct {
	Svc    cleaner.CleanerService
	Logger *zap.Logger
}

func NewCleanerHandler(svc cleaner.CleanerService, logger *zap.Logger) *CleanerHandler {
	return &CleanerHandler{Svc: svc, Logger: logger}
}

// Register handles POST /api/cleaners/register.
func (h *CleanerHandler) Register(c *gin.Context) {
	var input models.CleanerRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cleaner payload", err.Error())
		return
	}

	created, err := h.Svc.Register(c.Request.Context(), input)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCleaner handles GET /api/cleaners/:id.
func (h *CleanerHandler) GetCleaner(c *gin.Context) {
	found, err := h.Svc.GetCleaner(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListCleaners handles GET /api/cleaners with optional status filter.
func (h *CleanerHandler) ListCleaners(c *gin.Context) {
	ctx := c.Request.Context()
	if status := c.Query("status"); status != "" {
		cleaners, err := h.Svc.GetCleanersByStatus(ctx, models.CleanerStatus(status))
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, cleaners)
		return
	}

	cleaners, err := h.Svc.GetAllCleaners(ctx)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cleaners)
}

// ListAvailable handles GET /api/cleaners/available.
func (h *CleanerHandler) ListAvailable(c *gin.Context) {
	cleaners, err := h.Svc.GetAvailableCleaners(c.Request.Context())
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cleaners)
}

// ListByCity handles GET /api/cleaners/city/:city.
func (h *CleanerHandler) ListByCity(c *gin.Context) {
	cleaners, err := h.Svc.GetCleanersByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cleaners)
}

// ListAvailableByCity handles GET /api/cleaners/city/:city/available.
func (h *CleanerHandler) ListAvailableByCity(c *gin.Context) {
	cleaners, err := h.Svc.GetAvailableCleanersByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cleaners)
}

// ListByRegion handles GET /api/cleaners/region/:region.
func (h *CleanerHandler) ListByRegion(c *gin.Context) {
	cleaners, err := h.Svc.GetCleanersByRegion(c.Request.Context(), c.Param("region"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cleaners)
}

// ListByMaxRate handles GET /api/cleaners/max-rate/:maxRate.
func (h *CleanerHandler) ListByMaxRate(c *gin.Context) {
	maxRate, err := decimal.NewFromString(c.Param("maxRate"))
	if err != nil {
		utils.JSONDomainError(c, utils.ValidationError{Field: "maxRate", Message: "must be a decimal amount"})
		return
	}

	cleaners, err := h.Svc.GetCleanersByMaxRate(c.Request.Context(), maxRate)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cleaners)
}

// UpdateCleaner handles PUT /api/cleaners/:id.
func (h *CleanerHandler) UpdateCleaner(c *gin.Context) {
	var input models.Cleaner
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cleaner payload", err.Error())
		return
	}
	input.ID = c.Param("id")

	updated, err := h.Svc.UpdateCleaner(c.Request.Context(), &input)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateStatus handles PUT /api/cleaners/:id/status.
func (h *CleanerHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status models.CleanerStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid status payload", err.Error())
		return
	}

	updated, err := h.Svc.SetStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateRate handles PUT /api/cleaners/:id/rate.
func (h *CleanerHandler) UpdateRate(c *gin.Context) {
	var input struct {
		HourlyRate string `json:"hourlyRate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rate payload", err.Error())
		return
	}

	rate, err := decimal.NewFromString(input.HourlyRate)
	if err != nil {
		utils.JSONDomainError(c, utils.ValidationError{Field: "hourlyRate", Message: "must be a decimal amount"})
		return
	}

	updated, err := h.Svc.UpdateRate(c.Request.Context(), c.Param("id"), rate)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCleaner handles DELETE /api/cleaners/:id. Deleting a cleaner also
// deletes its bookings.
func (h *CleanerHandler) DeleteCleaner(c *gin.Context) {
	if err := h.Svc.DeleteCleaner(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MigratePendingToAvailable handles PUT /api/cleaners/migrate-pending-to-available.
func (h *CleanerHandler) MigratePendingToAvailable(c *gin.Context) {
	migrated, err := h.Svc.MigratePendingToAvailable(c.Request.Context())
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Successfully migrated %d cleaners from PENDING_APPROVAL to AVAILABLE", len(migrated)),
		"cleaners": migrated,
	})
}
