package main

import (
	"log"
	"net/http"

	"redpotion-core/config"
	httpapi "redpotion-core/order-svc/internal/api/http"
	"redpotion-core/order-svc/internal/service"
	"redpotion-core/order-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	writer := config.NewKafkaWriter("order-events")
	defer writer.Close()

	repository := storage.NewPostgresRepository(db)
	publisher := storage.NewKafkaPublisher(writer)
	files := storage.NewLocalSlipStore(config.UploadDir())
	qrEncoder := service.NewPromptPayEncoder(config.Getenv("PROMPTPAY_ID", "0000000000"))

	orders := service.NewOrderService(repository, publisher, qrEncoder)
	slips := service.NewSlipService(repository, files, publisher)

	handler := httpapi.NewHandler(orders, slips)

	addr := ":" + config.Getenv("PORT", "8082")
	log.Printf("Order Service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, httpapi.NewRouter(handler)))
}
