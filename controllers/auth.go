package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"ecommerce-backend/middleware"
	"ecommerce-backend/models"
	"ecommerce-backend/store"
)

type AuthController struct {
	users     store.UserStore
	jwtSecret []byte
}

func NewAuthController(users store.UserStore, jwtSecret []byte) *AuthController {
	return &AuthController{users: users, jwtSecret: jwtSecret}
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/auth/register
func (ct *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	if _, err := ct.users.FindByEmail(c.Request.Context(), input.Email); err == nil {
		fail(c, models.ErrEmailTaken)
		return
	} else if !errors.Is(err, models.ErrNotFound) {
		fail(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, err)
		return
	}
	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     models.RoleCustomer,
	}
	id, err := ct.users.Insert(c.Request.Context(), user)
	if err != nil {
		fail(c, err)
		return
	}
	user.ID = id
	user.Password = ""
	c.JSON(http.StatusCreated, user)
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (ct *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, err := ct.users.FindByEmail(c.Request.Context(), input.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(ct.jwtSecret, user)
	if err != nil {
		fail(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}
