package httpserver

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"pizzashop/internal/domain"
	ordersvc "pizzashop/internal/service/order"
)

type orderCreateInput = ordersvc.CreateInput

// Deps carries the services the handlers depend on.
type Deps struct {
	MenuRepo menuRepo
	CartSvc  cartService
	OrderSvc orderService
	Sessions sessionIssuer
}

type menuRepo interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
}

type cartService interface {
	AddItem(ctx context.Context, token string, itemID int64) error
	RemoveItem(ctx context.Context, token string, itemID int64) error
	Get(ctx context.Context, token string) domain.Cart
	IsEmpty(ctx context.Context, token string) bool
	Clear(ctx context.Context, token string) error
}

type orderService interface {
	Create(ctx context.Context, in orderCreateInput) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
	Count(ctx context.Context) (int, error)
}

// buildRouter wires all routes for the API.
func buildRouter(logger *zap.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/menu", menuHandler(deps.MenuRepo, logger))

	visitor := router.Group("/", sessionMiddleware(deps.Sessions))
	{
		visitor.GET("/cart", getCartHandler(deps.CartSvc))
		visitor.POST("/cart/items/:id", addToCartHandler(deps.CartSvc, logger))
		visitor.DELETE("/cart/items/:id", removeFromCartHandler(deps.CartSvc, logger))
		visitor.POST("/checkout", checkoutHandler(deps.CartSvc, deps.OrderSvc, logger))
	}

	router.GET("/orders/:id", orderDetailHandler(deps.OrderSvc, logger))

	manager := router.Group("/manager")
	{
		manager.GET("/orders", managerOrdersHandler(deps.OrderSvc, logger))
		manager.GET("/orders/:id", orderDetailHandler(deps.OrderSvc, logger))
	}

	return router
}
