package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/live/internal/models"
	"github.com/joshua-takyi/live/internal/services"
)

const defaultEventLimit = 50

// abortInvalid attaches a bad-request error for the error middleware.
func abortInvalid(c *gin.Context, format string, args ...any) {
	_ = c.Error(fmt.Errorf("%w: %s", services.ErrInvalidInput, fmt.Sprintf(format, args...)))
}

func ListEvents(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.EventQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			abortInvalid(c, "invalid query: %v", err)
			return
		}

		limit := c.DefaultQuery("limit", strconv.Itoa(defaultEventLimit))
		offset := c.DefaultQuery("offset", "0")
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt <= 0 {
			abortInvalid(c, "invalid limit parameter")
			return
		}
		offsetInt, err := strconv.Atoi(offset)
		if err != nil || offsetInt < 0 {
			abortInvalid(c, "invalid offset parameter")
			return
		}

		events, err := ls.Events(q)
		if err != nil {
			_ = c.Error(err)
			return
		}

		start, end := models.Window(len(events), offsetInt, limitInt)
		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(events[start:end], page, limitInt, len(events)))
	}
}

func EventSections(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.EventQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			abortInvalid(c, "invalid query: %v", err)
			return
		}
		sections, err := ls.Sections(q)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(sections, ""))
	}
}

func FeaturedEvent(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ev, err := ls.Featured()
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(ev, ""))
	}
}

func GetEvent(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ev, err := ls.Event(c.Param("id"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(ev, ""))
	}
}

func GetFilters(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(ls.Filters(), ""))
	}
}

func UpdateFilters(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.FilterPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			abortInvalid(c, "invalid request body: %v", err)
			return
		}
		filters, err := ls.UpdateFilters(patch)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(filters, "Filters updated"))
	}
}
