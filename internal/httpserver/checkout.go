package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pizzashop/internal/domain"
)

type checkoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// checkoutHandler snapshots the visitor's cart into an order. The cart is
// cleared only after the order is durably written; on a persistence failure
// it stays intact so the visitor can retry.
func checkoutHandler(carts cartService, orders orderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		token := visitorToken(c)
		cart := carts.Get(c.Request.Context(), token)
		if cart.IsEmpty() {
			logger.Warn("checkout attempted with empty cart")
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		lines := make([]domain.OrderLine, 0, len(cart.Lines))
		for _, line := range cart.Lines {
			lines = append(lines, domain.OrderLine{
				ItemID:         line.ItemID,
				Name:           line.Name,
				UnitPriceCents: line.PriceCents,
				Quantity:       line.Quantity,
			})
		}

		orderID, err := orders.Create(c.Request.Context(), orderCreateInput{
			CustomerName: req.Name,
			Phone:        req.Phone,
			Address:      req.Address,
			TotalCents:   cart.TotalCents(),
			Lines:        lines,
		})
		if err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
				return
			}
			logger.Error("checkout: create order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process your order, please try again"})
			return
		}

		if err := carts.Clear(c.Request.Context(), token); err != nil {
			// The order is already durable; an unclearable cart is only noise.
			logger.Warn("checkout: clear cart", zap.Error(err))
		}

		c.JSON(http.StatusCreated, gin.H{"orderId": orderID})
	}
}

func orderDetailHandler(orders orderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		order, err := orders.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			logger.Error("get order", zap.Int64("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
