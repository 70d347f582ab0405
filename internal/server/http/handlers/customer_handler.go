package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akarpov/retailhub/internal/server/http/dto"
)

// CustomerHandler manages customer endpoints.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	customer, err := h.facade.AddCustomer(c.Request.Context(), req.Name, req.Email, req.Phone, req.City)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCustomerResponse(*customer))
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.facade.Customers(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	response := make([]dto.CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		response = append(response, toCustomerResponse(cust))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/customers/:id.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	customer, err := h.facade.UpdateCustomer(c.Request.Context(), id, req.Phone, req.City)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCustomerResponse(*customer))
}

// Delete handles DELETE /api/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteCustomer(c.Request.Context(), id); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Orders handles GET /api/customers/:id/orders.
func (h *CustomerHandler) Orders(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	orders, err := h.facade.CustomerOrders(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}
