package main

import (
	"log"
	"net/http"

	httpapi "redpotion-core/cart-svc/internal/api/http"
	"redpotion-core/cart-svc/internal/service"
	"redpotion-core/cart-svc/internal/storage"
	"redpotion-core/config"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewRedisCartStore(rdb)
	carts := service.NewCartService(store)
	handler := httpapi.NewHandler(carts)

	addr := ":" + config.Getenv("PORT", "8084")
	log.Printf("Cart Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, httpapi.NewRouter(handler)))
}
