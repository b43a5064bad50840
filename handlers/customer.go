package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JohnRey-Adao/AppDev2-CleaningService/models"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/services/customer"
	"github.com/JohnRey-Adao/AppDev2-CleaningService/utils"
)

// CustomerHandler exposes customer management over HTTP.
type CustomerHandler struct {
	Svc    customer.CustomerService
	Logger *zap.Logger
}

func NewCustomerHandler(svc customer.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{Svc: svc, Logger: logger}
}

// Register handles POST /api/customers/register.
func (h *CustomerHandler) Register(c *gin.Context) {
	var input models.CustomerRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer payload", err.Error())
		return
	}

	created, err := h.Svc.Register(c.Request.Context(), input)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCustomer handles GET /api/customers/:id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	found, err := h.Svc.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListCustomers handles GET /api/customers with optional city/region
// filters.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	ctx := c.Request.Context()

	if city := c.Query("city"); city != "" {
		customers, err := h.Svc.GetCustomersByCity(ctx, city)
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, customers)
		return
	}
	if region := c.Query("region"); region != "" {
		customers, err := h.Svc.GetCustomersByRegion(ctx, region)
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, customers)
		return
	}

	customers, err := h.Svc.GetAllCustomers(ctx)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// UpdateCustomer handles PUT /api/customers/:id.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var input models.Customer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer payload", err.Error())
		return
	}
	input.ID = c.Param("id")

	updated, err := h.Svc.UpdateCustomer(c.Request.Context(), &input)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateAddress handles PUT /api/customers/:id/address.
func (h *CustomerHandler) UpdateAddress(c *gin.Context) {
	var input models.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid address payload", err.Error())
		return
	}

	updated, err := h.Svc.UpdateAddress(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCustomer handles DELETE /api/customers/:id.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.Svc.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
