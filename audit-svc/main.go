package main

import (
	"context"
	"log"
	"net/http"

	httpapi "redpotion-core/audit-svc/internal/api/http"
	"redpotion-core/audit-svc/internal/service"
	"redpotion-core/audit-svc/internal/storage"
	"redpotion-core/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("order-events", "audit-svc-consumer")
	defer reader.Close()

	store := storage.NewStore(db, rdb)
	consumer := service.NewConsumer(reader, store)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(store)

	addr := ":" + config.Getenv("PORT", "8083")
	log.Printf("Audit Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, httpapi.NewRouter(handler)))
}
