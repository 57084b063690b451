package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/live/internal/models"
	"github.com/joshua-takyi/live/internal/services"
)

func ListSaved(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(ls.Saved(), ""))
	}
}

func ToggleSaved(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		saved, err := ls.ToggleSaved(c.Param("eventId"))
		if err != nil {
			_ = c.Error(err)
			return
		}

		msg := "Event removed from saved"
		if saved {
			msg = "Event saved"
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"saved": saved}, msg))
	}
}
