package httpserver

import (
	"errors"
	"log"
	"time"

	"huerto-hogar/internal/cart"
	productrepo "huerto-hogar/internal/repository/product"
	userrepo "huerto-hogar/internal/repository/user"
	"huerto-hogar/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps bundles everything the routes need.
type Deps struct {
	Users         userrepo.Repository
	Catalog       productrepo.Repository
	Cart          *cart.Store
	Session       *session.Manager
	SubmitTimeout time.Duration
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.Users == nil || deps.Catalog == nil || deps.Cart == nil || deps.Session == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/catalog", listCatalogHandler(logger, deps))
	router.GET("/catalog/:id", getCatalogHandler(logger, deps))

	auth := router.Group("/auth")
	{
		auth.POST("/login", loginHandler(logger, deps))
		auth.POST("/register", registerHandler(logger, deps))
		auth.POST("/logout", logoutHandler(deps))
		auth.GET("/me", currentUserHandler(deps))
	}

	cartGroup := router.Group("/cart")
	{
		cartGroup.GET("", getCartHandler(deps))
		cartGroup.DELETE("", clearCartHandler(deps))
		cartGroup.POST("/items", addCartItemHandler(logger, deps))
		cartGroup.POST("/items/:id/increment", incrementCartItemHandler(deps))
		cartGroup.POST("/items/:id/decrement", decrementCartItemHandler(deps))
		cartGroup.DELETE("/items/:id", removeCartItemHandler(deps))
		cartGroup.POST("/discount", toggleDiscountHandler(deps))
		cartGroup.POST("/checkout", checkoutHandler)
	}

	return router, nil
}
