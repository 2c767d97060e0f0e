package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pizzashop/internal/domain"
)

func menuHandler(repo menuRepo, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			logger.Error("list menu", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
			return
		}
		if items == nil {
			items = []domain.MenuItem{}
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}
