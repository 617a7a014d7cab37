package router

import (
	"log/slog"
	"path/filepath"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/devansh6012/online-store-test/internal/config"
	"github.com/devansh6012/online-store-test/internal/server/http/handlers"
	"github.com/devansh6012/online-store-test/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	categoryHandler := handlers.NewCategoryHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	engine.Static("/uploads", cfg.UploadDir)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authed := auth.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/me", authHandler.Me)
	authed.PUT("/profile", authHandler.UpdateProfile)
	authed.DELETE("/account", authHandler.DeleteAccount)

	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/products/images/:filename", serveImage(cfg.UploadDir))
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.Get)
	api.GET("/categories/:id/products", categoryHandler.Products)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/my-orders", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("/:id/cancel", orderHandler.Cancel)
	orders.PATCH("/:id/status", adminHandler.UpdateOrderStatus)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired(facade))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.Users)
	admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/orders", adminHandler.Orders)
	admin.GET("/orders/:id", adminHandler.Order)
	admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.GET("/products", productHandler.List)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)
	admin.PUT("/products/:id/images", productHandler.ReplaceImages)
	admin.DELETE("/products/:id/images/:imageID", productHandler.DeleteImage)
	admin.POST("/categories", categoryHandler.Create)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)

	return engine
}

// serveImage streams a stored product image. The filename is reduced to its
// base to keep lookups inside the upload directory.
func serveImage(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(filepath.Join(dir, filepath.Base(c.Param("filename"))))
	}
}
