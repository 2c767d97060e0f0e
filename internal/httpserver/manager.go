package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pizzashop/internal/domain"
	ordersvc "pizzashop/internal/service/order"
)

type managerOrdersResponse struct {
	Orders      []domain.Order `json:"orders"`
	Page        int            `json:"page"`
	PerPage     int            `json:"perPage"`
	TotalOrders int            `json:"totalOrders"`
	TotalPages  int            `json:"totalPages"`
	HasPrev     bool           `json:"hasPrev"`
	HasNext     bool           `json:"hasNext"`
}

// managerOrdersHandler lists orders for operational review, newest first,
// with page/per_page pagination.
func managerOrdersHandler(orders orderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := queryInt(c, "page", 1)
		if page < 1 {
			page = 1
		}
		perPage := queryInt(c, "per_page", ordersvc.DefaultPageSize)
		if perPage < 1 {
			perPage = ordersvc.DefaultPageSize
		}
		offset := (page - 1) * perPage

		list, err := orders.List(c.Request.Context(), perPage, offset)
		if err != nil {
			logger.Error("manager: list orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
			return
		}
		total, err := orders.Count(c.Request.Context())
		if err != nil {
			logger.Error("manager: count orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
			return
		}

		if list == nil {
			list = []domain.Order{}
		}
		totalPages := (total + perPage - 1) / perPage

		c.JSON(http.StatusOK, managerOrdersResponse{
			Orders:      list,
			Page:        page,
			PerPage:     perPage,
			TotalOrders: total,
			TotalPages:  totalPages,
			HasPrev:     page > 1,
			HasNext:     page < totalPages,
		})
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
