package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/models"
	"ecommerce-backend/services"
)

type OrderController struct {
	checkout *services.CheckoutService
}

func NewOrderController(checkout *services.CheckoutService) *OrderController {
	return &OrderController{checkout: checkout}
}

// POST /api/orders
func (ct *OrderController) Create(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	order, err := ct.checkout.CreateOrder(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "order created", "order": order})
}

// GET /api/orders
func (ct *OrderController) List(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	orders, err := ct.checkout.ListOrders(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// PUT /api/orders/:id (admin)
func (ct *OrderController) UpdateStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	order, err := ct.checkout.SetStatus(c.Request.Context(), orderID, models.OrderStatus(input.Status))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order status updated", "order": order})
}

// DELETE /api/orders/:id (admin)
func (ct *OrderController) Delete(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ct.checkout.DeleteOrder(c.Request.Context(), orderID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
