package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"restaurant-ordering/config"
	httpapi "restaurant-ordering/sales-svc/internal/api/http"
	"restaurant-ordering/sales-svc/internal/service"
	"restaurant-ordering/sales-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	if err := run(); err != nil {
		log.Fatalf("[sales-svc] %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrdersTopic(), "sales-svc")
	defer reader.Close()

	store := storage.NewStore(rdb)
	handler := httpapi.NewHandler(service.NewSalesService(store, time.Now))
	server := &http.Server{
		Addr:    ":" + config.GetEnv("PORT", "8082"),
		Handler: httpapi.NewRouter(handler),
	}

	return service.Run(ctx, service.NewConsumer(reader, store), server, 5*time.Second)
}
