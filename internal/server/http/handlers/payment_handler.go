package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akarpov/retailhub/internal/domain/model"
	"github.com/akarpov/retailhub/internal/server/http/dto"
)

// PaymentHandler manages payment lifecycle endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Create handles POST /api/orders/:id/payment.
func (h *PaymentHandler) Create(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	payment, err := h.facade.CreatePayment(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPaymentResponse(*payment))
}

// Process handles POST /api/orders/:id/payment/process.
func (h *PaymentHandler) Process(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.ProcessPayment(c.Request.Context(), id, model.PaymentMethod(req.Method))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPaymentResponse(*payment))
}

// Refund handles POST /api/orders/:id/payment/refund.
func (h *PaymentHandler) Refund(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	payment, err := h.facade.RefundPayment(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPaymentResponse(*payment))
}
