package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/services/booking"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	created, err := h.Svc.CreateBooking(c.Request.Context(), input)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListBookings handles GET /api/bookings with optional status / date-range
// filters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	ctx := c.Request.Context()

	if status := c.Query("status"); status != "" {
		bookings, err := h.Svc.GetBookingsByStatus(ctx, models.BookingStatus(status))
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
		return
	}

	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		start, err := utils.ParseLocalDateTime(from)
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		end, err := utils.ParseLocalDateTime(to)
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		bookings, err := h.Svc.GetBookingsByDateRange(ctx, start, end)
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
		return
	}

	bookings, err := h.Svc.GetAllBookings(ctx)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListByCustomer handles GET /api/bookings/customer/:customerId.
func (h *BookingHandler) ListByCustomer(c *gin.Context) {
	bookings, err := h.Svc.GetBookingsByCustomer(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListByCleaner handles GET /api/bookings/cleaner/:cleanerId.
func (h *BookingHandler) ListByCleaner(c *gin.Context) {
	bookings, err := h.Svc.GetBookingsByCleaner(c.Request.Context(), c.Param("cleanerId"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CheckAvailability handles GET /api/bookings/availability/:cleanerId/:date.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	available, err := h.Svc.IsCleanerAvailableOnDate(c.Request.Context(), c.Param("cleanerId"), c.Param("date"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// ConfirmBooking handles PUT /api/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.applyTransition(c, h.Svc.ConfirmBooking)
}

// StartBooking handles PUT /api/bookings/:id/start.
func (h *BookingHandler) StartBooking(c *gin.Context) {
	h.applyTransition(c, h.Svc.StartBooking)
}

// CompleteBooking handles PUT /api/bookings/:id/complete.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.applyTransition(c, h.Svc.CompleteBooking)
}

// CancelBooking handles PUT /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.applyTransition(c, h.Svc.CancelBooking)
}

// UpdateStatus handles PUT /api/bookings/:id/status, the generic admin
// path.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid status payload", err.Error())
		return
	}

	updated, err := h.Svc.UpdateBookingStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateBooking handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var input models.BookingUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	updated, err := h.Svc.UpdateBooking(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Svc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) applyTransition(c *gin.Context, op func(ctx context.Context, id string) (*models.Booking, error)) {
	updated, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
