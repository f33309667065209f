package main

import (
	"log"
	"net/http"

	"redpotion-core/api-gateway/internal/gateway"
	"redpotion-core/config"

	"github.com/rs/cors"
)

func main() {
	gatewayConfig := gateway.Config{
		CartSvcURL:    config.Getenv("CART_SVC_URL", "http://localhost:8084"),
		CatalogSvcURL: config.Getenv("CATALOG_SVC_URL", "http://localhost:8081"),
		OrderSvcURL:   config.Getenv("ORDER_SVC_URL", "http://localhost:8082"),
		AuditSvcURL:   config.Getenv("AUDIT_SVC_URL", "http://localhost:8083"),
	}

	gw := gateway.NewGateway(gatewayConfig, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := ":" + config.Getenv("PORT", "8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
