package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gin-gonic/gin"

	"github.com/flowmart/checkout-functions/internal/config"
	"github.com/flowmart/checkout-functions/internal/handlers"
	"github.com/flowmart/checkout-functions/internal/local"
	"github.com/flowmart/checkout-functions/internal/logger"
	"github.com/flowmart/checkout-functions/internal/metrics"
	"github.com/flowmart/checkout-functions/internal/orders"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	slogger := logger.New()
	store := orders.NewPostgresStore(cfg.DatabaseURL, slogger)

	var publisher *metrics.Publisher
	if cfg.MetricsNamespace != "" {
		publisher, err = metrics.NewFromEnv(context.Background(), cfg.MetricsNamespace, slogger)
		if err != nil {
			slogger.Warn("metrics disabled", "error", err)
			publisher = nil
		}
	}

	h := handlers.NewCreateOrderHandler(handlers.CreateOrderConfig{
		Store:          store,
		Metrics:        publisher,
		Logger:         slogger,
		PaymentBaseURL: cfg.PaymentBaseURL,
		DBTimeout:      cfg.DBTimeout,
	})

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		if err := store.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("failed to init schema: %v", err)
		}

		r := gin.New()
		r.Use(gin.Recovery())
		r.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		r.Any("/orders", local.Route(h.Handle))

		log.Printf("running local server on %s", cfg.RunAddress)
		if err := r.Run(cfg.RunAddress); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	lambda.Start(h.Handle)
}
