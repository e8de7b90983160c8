package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// GET /api/cart
func (ct *CartController) Get(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	view, err := ct.cart.GetCart(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type addItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// POST /api/cart
func (ct *CartController) AddItem(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var input addItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid productId"})
		return
	}
	view, err := ct.cart.AddItem(c.Request.Context(), userID, productID, input.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PUT /api/cart/products/:productId
func (ct *CartController) UpdateQuantity(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	view, err := ct.cart.UpdateQuantity(c.Request.Context(), userID, productID, input.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DELETE /api/cart/:productId
func (ct *CartController) RemoveItem(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}
	view, err := ct.cart.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DELETE /api/cart
func (ct *CartController) Clear(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := ct.cart.ClearCart(c.Request.Context(), userID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
