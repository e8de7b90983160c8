package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/models"
	"ecommerce-backend/store"
)

type ProductController struct {
	products store.ProductStore
}

func NewProductController(products store.ProductStore) *ProductController {
	return &ProductController{products: products}
}

// GET /api/products
func (ct *ProductController) List(c *gin.Context) {
	products, err := ct.products.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (ct *ProductController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := ct.products.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

type productInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// POST /api/products (admin)
func (ct *ProductController) Create(c *gin.Context) {
	var input productInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}
	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
		Image:       input.Image,
	}
	id, err := ct.products.Insert(c.Request.Context(), product)
	if err != nil {
		fail(c, err)
		return
	}
	product.ID = id
	c.JSON(http.StatusCreated, product)
}

// PUT /api/products/:id (admin)
func (ct *ProductController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var upd models.ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if upd.Price != nil && *upd.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}
	if upd.Stock != nil && *upd.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stock cannot be negative"})
		return
	}
	product, err := ct.products.Update(c.Request.Context(), id, &upd)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DELETE /api/products/:id (admin)
func (ct *ProductController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ct.products.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
