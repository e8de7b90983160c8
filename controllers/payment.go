package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/services"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// POST /api/payments/create-checkout-session/:orderId
func (ct *PaymentController) CreateCheckoutSession(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	url, err := ct.payments.RequestSession(c.Request.Context(), orderID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GET /api/payments/verify-payment?session_id=...
func (ct *PaymentController) VerifyPayment(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}
	sess, order, err := ct.payments.Reconcile(c.Request.Context(), sessionID)
	if err != nil {
		fail(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusOK, gin.H{"status": sess.Status, "message": "payment status: " + sess.Status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": sess.Status, "message": "payment confirmed", "order": order})
}
