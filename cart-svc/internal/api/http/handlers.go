package httpapi

import (
	"encoding/json"
	"net/http"

	"redpotion-core/cart-svc/internal/domain"
	"redpotion-core/cart-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Carts service.CartServiceInterface
}

func NewHandler(carts service.CartServiceInterface) *Handler {
	return &Handler{Carts: carts}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/cart/{role}/{restaurantId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{role}/{restaurantId}", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{role}/{restaurantId}/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/cart/{role}/{restaurantId}/items/{itemId}", h.updateQuantity).Methods("PUT")
	r.HandleFunc("/api/cart/{role}/{restaurantId}/items/{itemId}", h.removeItem).Methods("DELETE")
}

func cartScope(r *http.Request) (restaurantID, role string, ok bool) {
	vars := mux.Vars(r)
	restaurantID = vars["restaurantId"]
	role = vars["role"]
	return restaurantID, role, domain.ValidRole(role)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	restaurantID, role, ok := cartScope(r)
	if !ok {
		http.Error(w, "Unknown cart role", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Carts.Get(r.Context(), restaurantID, role))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, role, ok := cartScope(r)
	if !ok {
		http.Error(w, "Unknown cart role", http.StatusBadRequest)
		return
	}

	var payload struct {
		Item     domain.MenuItem `json:"item"`
		AddOns   []domain.AddOn  `json:"add_ons"`
		Quantity int             `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	summary, err := h.Carts.AddItem(r.Context(), restaurantID, role, payload.Item, payload.AddOns, payload.Quantity)
	if err != nil {
		switch err {
		case service.ErrInvalidQuantity, service.ErrWrongRestaurant:
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	restaurantID, role, ok := cartScope(r)
	if !ok {
		http.Error(w, "Unknown cart role", http.StatusBadRequest)
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary := h.Carts.UpdateQuantity(r.Context(), restaurantID, role, mux.Vars(r)["itemId"], payload.Quantity)
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, role, ok := cartScope(r)
	if !ok {
		http.Error(w, "Unknown cart role", http.StatusBadRequest)
		return
	}

	summary := h.Carts.RemoveItem(r.Context(), restaurantID, role, mux.Vars(r)["itemId"])
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	restaurantID, role, ok := cartScope(r)
	if !ok {
		http.Error(w, "Unknown cart role", http.StatusBadRequest)
		return
	}

	h.Carts.Clear(r.Context(), restaurantID, role)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
