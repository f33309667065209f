package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"redpotion-core/audit-svc/internal/domain"
	"redpotion-core/audit-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Store service.StoreInterface
}

func NewHandler(store service.StoreInterface) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/audit/restaurants/{restaurantId}/daily", h.getDailySummary).Methods("GET")
	r.HandleFunc("/api/audit/payments/top", h.getTopPaid).Methods("GET")
	r.HandleFunc("/api/audit/orders/{orderId}/events", h.getOrderEvents).Methods("GET")
}

func (h *Handler) getDailySummary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	summary, err := h.Store.DailySummary(mux.Vars(r)["restaurantId"], date)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]int64{})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *Handler) getTopPaid(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 10
	}

	top, _ := h.Store.TopPaidRestaurants(date, limit)
	if top == nil {
		top = []domain.RestaurantPayments{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(top)
}

func (h *Handler) getOrderEvents(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.OrderEvents(mux.Vars(r)["orderId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []domain.AuditRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}
