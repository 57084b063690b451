package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/live/internal/models"
	"github.com/joshua-takyi/live/internal/services"
)

func Health(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := ls.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "DEGRADED",
				"service": "spotify-live-api",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": "spotify-live-api",
		})
	}
}

func GetProfile(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(ls.Profile(), ""))
	}
}

func GetDiscovery(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(ls.Discovery(), ""))
	}
}

func DismissDiscovery(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Permanent bool `json:"permanent"`
		}
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&reqBody); err != nil {
				abortInvalid(c, "invalid request body: %v", err)
				return
			}
		}
		ls.DismissDiscovery(reqBody.Permanent)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Discovery dismissed"))
	}
}
