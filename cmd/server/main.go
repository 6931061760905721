package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/yolimar-textil/storefront-api/internal/cart"
	"github.com/yolimar-textil/storefront-api/internal/catalog"
	"github.com/yolimar-textil/storefront-api/internal/config"
	"github.com/yolimar-textil/storefront-api/internal/handlers"
	"github.com/yolimar-textil/storefront-api/internal/middleware"
	"github.com/yolimar-textil/storefront-api/internal/order"
	"github.com/yolimar-textil/storefront-api/internal/service"
	"github.com/yolimar-textil/storefront-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Price tables and discount programs are validated once at startup; a
	// discount larger than any base price never reaches the engine.
	catalogCfg := catalog.Default()
	if err := catalogCfg.Validate(); err != nil {
		log.Error("invalid catalog configuration", "error", err)
		os.Exit(1)
	}
	log.Info("catalog configuration loaded",
		"types", len(catalogCfg.Types),
		"catalog_program_enabled", catalogCfg.CatalogProgram.Enabled,
		"design_program_enabled", catalogCfg.DesignProgram.Enabled,
	)

	// Initialize repositories and the session cart store
	productRepo := catalog.NewInMemoryRepository(catalogCfg, log)
	cartStore := cart.NewStore(catalogCfg.CatalogProgram, catalogCfg.DesignProgram)

	// Initialize services
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(log)

	company := order.Company{
		Name:    cfg.Company.Name,
		Slogan:  cfg.Company.Slogan,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
		Website: cfg.Company.Website,
	}
	notifier := order.NewMailNotifier(cfg.Mail.SendGridAPIKey, cfg.Mail.FromAddress, company, log)
	if notifier.Enabled() {
		log.Info("seller mail notifications enabled", "from", cfg.Mail.FromAddress)
	} else {
		log.Info("seller mail notifications disabled: no SendGrid API key configured")
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productService, log)
	priceHandler := handlers.NewPriceHandler(productRepo, catalogCfg, log)
	cartHandler := handlers.NewCartHandler(cartStore, productRepo, log)
	orderHandler := handlers.NewOrderHandler(cartStore, orderService, notifier, company, log)
	adminHandler := handlers.NewAdminHandler(catalogCfg, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration; credentials are required for the session cookie
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Product endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/product/{productId}/variants", productHandler.GetVariants)

		// Price quote endpoint
		r.Get("/price", priceHandler.GetQuote)

		// Cart endpoints
		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Patch("/cart/items/{lineKey}", cartHandler.UpdateItem)
		r.Delete("/cart/items/{lineKey}", cartHandler.RemoveItem)
		r.Delete("/cart", cartHandler.ClearCart)
		r.Post("/cart/open", cartHandler.OpenCart)
		r.Post("/cart/close", cartHandler.CloseCart)

		// Order endpoints
		r.Post("/order", orderHandler.CreateOrder)
		r.Post("/order/pdf", orderHandler.CreateOrderPDF)

		// Admin endpoints (API key required)
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			r.Get("/config", adminHandler.GetConfig)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
