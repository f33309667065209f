package main

import (
	"log"
	"net/http"
	"time"

	httpapi "redpotion-core/catalog-svc/internal/api/http"
	"redpotion-core/catalog-svc/internal/service"
	"redpotion-core/catalog-svc/internal/storage"
	"redpotion-core/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repository := storage.NewPostgresRepository(db)
	cache := storage.NewRedisMenuCache(rdb, 10*time.Minute)

	catalog := service.NewCatalogService(repository, cache)
	admin := service.NewAdminService(repository)
	gallery := service.NewGalleryService(
		config.Getenv("IMAGE_HOST_URL", "http://localhost:9000"),
		&http.Client{},
	)

	handler := httpapi.NewHandler(catalog, admin, gallery)

	addr := ":" + config.Getenv("PORT", "8081")
	log.Printf("Catalog Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, httpapi.NewRouter(handler)))
}
