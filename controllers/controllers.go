package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-backend/models"
)

// statusFor maps domain errors to HTTP status codes. Anything unrecognized is
// a 500; failures are request-scoped and never retried.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidArgument), errors.Is(err, models.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInsufficientStock), errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, models.ErrUpstreamPayment):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// authedUserID reads the identity RequireAuth stored in the context.
func authedUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return primitive.NilObjectID, false
	}
	return id, true
}
