package main

import (
	"context"
	"log"
	"time"

	"restaurant-ordering/config"
	httpapi "restaurant-ordering/menu-svc/internal/api/http"
	"restaurant-ordering/menu-svc/internal/service"
	"restaurant-ordering/menu-svc/internal/storage"

	"github.com/shopspring/decimal"
)

func main() {
	config.LoadEnv()
	decimal.MarshalJSONWithoutQuotes = true

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.OrdersTopic())
	defer writer.Close()

	uploadDir := config.GetEnv("UPLOAD_DIR", "./uploads")
	media := storage.NewFileMediaStore(uploadDir, "/uploads")
	carts := storage.NewRedisCartStore(rdb, config.GetDuration("CART_TTL", 24*time.Hour))
	publisher := storage.NewKafkaPublisher(writer)
	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")}

	categorySvc := service.NewCategoryService(repo, media)
	dishSvc := service.NewDishService(repo, repo, media)
	orderSvc := service.NewOrderService(repo, repo, qr, publisher)
	statsSvc := service.NewStatisticsService(repo, time.Now)
	cartSvc := service.NewCartService(carts, repo, orderSvc)

	handler := httpapi.NewHandler(categorySvc, dishSvc, orderSvc, statsSvc, cartSvc)
	router := httpapi.NewRouter(handler, uploadDir)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), router)
}
