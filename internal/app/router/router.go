// Package router wires HTTP routes to handlers.
package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "coffee_backend/internal/feature/auth/transport/handler"
	menuhandler "coffee_backend/internal/feature/menu/transport/handler"
	orderhandler "coffee_backend/internal/feature/order/transport/handler"
	"coffee_backend/internal/platform/http/handler"
	jwtmw "coffee_backend/internal/platform/jwt"
)

// Handlers groups every feature handler mounted by NewRouter.
type Handlers struct {
	Auth    *authhandler.AuthHandler
	Account *authhandler.AccountHandler
	Menu    *menuhandler.MenuHandler
	Order   *orderhandler.OrderHandler
	// Ready backs /readyz; the route is omitted when nil.
	Ready gin.HandlerFunc
}

// Options configures the middleware stack.
type Options struct {
	JWTSecret      string
	AllowedOrigins []string
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	// No authentication
	r.GET("/", handler.Root)
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	if h.Ready != nil {
		r.GET("/readyz", h.Ready)
	}
	r.GET("/openapi.yaml", handler.OpenAPI)

	apiGroup := r.Group("/api")

	auth := apiGroup.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}

	menu := apiGroup.Group("/menu")
	{
		menu.GET("", h.Menu.List)
		menu.GET("/search", h.Menu.Search)

		// Mutations are admin only
		admin := menu.Group("", jwtmw.AuthRequired(opts.JWTSecret), jwtmw.RequireAdmin())
		admin.POST("", h.Menu.Create)
		admin.PUT("/:id", h.Menu.Update)
		admin.DELETE("/:id", h.Menu.Delete)
	}

	orders := apiGroup.Group("/orders", jwtmw.AuthRequired(opts.JWTSecret))
	{
		orders.POST("", h.Order.Place)
		orders.GET("/:userId", h.Order.ListForUser)
	}

	admin := apiGroup.Group("/admin", jwtmw.AuthRequired(opts.JWTSecret), jwtmw.RequireAdmin())
	{
		admin.PUT("/disable/:id", h.Account.Disable)
		admin.PUT("/enable/:id", h.Account.Enable)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
