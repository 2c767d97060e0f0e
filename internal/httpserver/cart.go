package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pizzashop/internal/domain"
)

type cartResponse struct {
	Lines      []domain.CartLine `json:"lines"`
	TotalCents int64             `json:"totalCents"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	lines := make([]domain.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, line)
	}
	return cartResponse{Lines: lines, TotalCents: cart.TotalCents()}
}

func getCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := svc.Get(c.Request.Context(), visitorToken(c))
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func addToCartHandler(svc cartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
			return
		}
		if err := svc.AddItem(c.Request.Context(), visitorToken(c), itemID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				logger.Warn("add to cart: unknown item", zap.Int64("item_id", itemID))
				c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
				return
			}
			logger.Error("add to cart", zap.Int64("item_id", itemID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "item added to cart"})
	}
}

func removeFromCartHandler(svc cartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
			return
		}
		// Removing an item that is not in the cart is not an error.
		if err := svc.RemoveItem(c.Request.Context(), visitorToken(c), itemID); err != nil {
			logger.Error("remove from cart", zap.Int64("item_id", itemID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item from cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "item removed from cart"})
	}
}
