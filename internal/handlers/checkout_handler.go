package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/live/internal/models"
	"github.com/joshua-takyi/live/internal/services"
)

func CheckoutQuote(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.QuoteRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				abortInvalid(c, "invalid request body: %v", err)
				return
			}
		}
		c.JSON(http.StatusOK, models.SuccessResponse(ls.Quote(req), ""))
	}
}

func Checkout(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form services.CheckoutForm
		if err := c.ShouldBindJSON(&form); err != nil {
			abortInvalid(c, "invalid request body: %v", err)
			return
		}
		res, err := ls.Checkout(form)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(res, "Purchase complete"))
	}
}

func ListTickets(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tickets, err := ls.Tickets(c.Query("status"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(tickets, ""))
	}
}

func VerifyTicket(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticket, err := ls.VerifyTicket(c.Query("qr"))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(ticket, "Ticket is valid"))
	}
}
