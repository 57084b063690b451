package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/live/internal/models"
	"github.com/joshua-takyi/live/internal/services"
)

// GetCart accepts ?promo= and ?premium= so the cart page can preview totals.
func GetCart(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := services.QuoteRequest{
			PromoCode:  c.Query("promo"),
			AddPremium: c.Query("premium") == "true",
		}
		c.JSON(http.StatusOK, models.SuccessResponse(ls.Cart(q), ""))
	}
}

func AddToCart(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortInvalid(c, "invalid request body: %v", err)
			return
		}
		item, err := ls.AddToCart(req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(item, "Added to cart"))
	}
}

func UpdateCartItem(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.CartItemPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			abortInvalid(c, "invalid request body: %v", err)
			return
		}
		item, err := ls.UpdateCartItem(c.Param("eventId"), patch)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(item, "Cart updated"))
	}
}

func RemoveFromCart(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ls.RemoveFromCart(c.Param("eventId"))
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Item removed from cart"))
	}
}

func ClearCart(ls *services.LiveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ls.ClearCart()
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Cart cleared"))
	}
}
