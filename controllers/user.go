package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-backend/store"
)

type UserController struct {
	users store.UserStore
}

func NewUserController(users store.UserStore) *UserController {
	return &UserController{users: users}
}

// GET /api/user/profile
func (ct *UserController) GetProfile(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	user, err := ct.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// PUT /api/user/profile
func (ct *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var input struct {
		Name  string `json:"name"`
		Email string `json:"email" binding:"omitempty,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := ct.users.UpdateProfile(c.Request.Context(), userID, input.Name, input.Email); err != nil {
		fail(c, err)
		return
	}
	ct.GetProfile(c)
}
