package main

import (
	"log"
	"net/http"
	"time"

	"restaurant-ordering/api-gateway/internal/gateway"
	"restaurant-ordering/config"

	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()

	cfg := gateway.Config{
		MenuSvcURL:  config.GetEnv("MENU_SVC_URL", "http://localhost:8081"),
		SalesSvcURL: config.GetEnv("SALES_SVC_URL", "http://localhost:8082"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{Timeout: 30 * time.Second})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(r)

	addr := ":" + config.GetEnv("PORT", "8080")
	log.Printf("[api-gateway] starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
