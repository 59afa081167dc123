package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	PaymentSvc payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{PaymentSvc: svc}
}

// CreatePaymentIntent handles POST /create-payment-intent with body {"price": n}.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}
	secret, err := h.PaymentSvc.CreateIntent(c.Request.Context(), body.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// RecordPayment handles POST /payments.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	p, err := h.PaymentSvc.Record(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": p, "paid": true})
}
