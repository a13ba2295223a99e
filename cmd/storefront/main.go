package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velu-medicals/storefront/internal/admin"
	"github.com/velu-medicals/storefront/internal/cart"
	"github.com/velu-medicals/storefront/internal/catalog"
	"github.com/velu-medicals/storefront/internal/config"
	"github.com/velu-medicals/storefront/internal/httpx"
	"github.com/velu-medicals/storefront/internal/lookup"
)

func newRouter(log *zap.Logger, cfg config.Config, store *catalog.Store, sessions *cart.Sessions, searcher lookup.Searcher) *gin.Engine {
	gate := admin.NewGate(cfg.AdminSecret)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.GET("/products", listProductsHandler(store))
	r.GET("/products/:id", getProductHandler(store))
	r.GET("/products/:id/info", productInfoHandler(store, searcher))

	withCart := r.Group("/cart", cartSession(sessions))
	withCart.GET("", getCartHandler(sessions))
	withCart.POST("/items", addCartItemHandler(sessions, store))
	withCart.PUT("/items/:id", updateCartItemHandler(sessions))
	withCart.DELETE("/items/:id", removeCartItemHandler(sessions))
	withCart.POST("/checkout", checkoutHandler(sessions, cfg.StoreName, cfg.WhatsAppNumber))

	r.POST("/admin/login", adminLoginHandler(gate))
	adm := r.Group("/admin", adminAuth(gate))
	adm.POST("/products", createProductHandler(store))
	adm.PUT("/products/:id", updateProductHandler(store))
	adm.DELETE("/products/:id", deleteProductHandler(store))

	return r
}

func main() {
	log, _ := zap.NewProduction()
	defer func() { _ = log.Sync() }()

	cfg := config.Load(log)

	store := catalog.NewStore(catalog.Seed())
	sessions := cart.NewSessions()

	var searcher lookup.Searcher
	if cfg.GeminiAPIKey != "" {
		g, err := lookup.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, log)
		if err != nil {
			log.Fatal("gemini client", zap.Error(err))
		}
		searcher = g
	} else {
		log.Warn("GEMINI_API_KEY not set, product info lookup disabled")
	}

	r := newRouter(log, cfg, store, sessions, searcher)
	log.Info("storefront listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
