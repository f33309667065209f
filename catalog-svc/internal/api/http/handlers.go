package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"redpotion-core/catalog-svc/internal/domain"
	"redpotion-core/catalog-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Admin   service.AdminServiceInterface
	Gallery service.GalleryServiceInterface
}

func NewHandler(catalog service.CatalogServiceInterface, admin service.AdminServiceInterface, gallery service.GalleryServiceInterface) *Handler {
	return &Handler{Catalog: catalog, Admin: admin, Gallery: gallery}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/restaurant/menu-items/{itemId}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/restaurant/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurant/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurant/{id}/gallery", h.getGallery).Methods("GET")

	r.HandleFunc("/api/admin/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/admin/restaurants/{id}", h.updateRestaurant).Methods("PUT")
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Catalog.GetRestaurant(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Catalog.GetMenu(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Catalog.GetMenuItem(r.Context(), mux.Vars(r)["itemId"])
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// getGallery always answers 200. The gallery is non-critical, so resolution
// failures aside, the worst outcome is an empty list.
func (h *Handler) getGallery(w http.ResponseWriter, r *http.Request) {
	id, err := service.Resolve(mux.Vars(r)["id"])
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Gallery.Fetch(r.Context(), id))
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	result, err := h.Admin.ListRestaurants(r.Context(), page, limit, query.Get("status"), query.Get("search"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var patch domain.RestaurantPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	restaurant, err := h.Admin.UpdateRestaurant(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		switch err {
		case service.ErrRestaurantNotFound:
			http.Error(w, err.Error(), http.StatusNotFound)
		case service.ErrInvalidStatusChange:
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func writeCatalogError(w http.ResponseWriter, err error) {
	switch err {
	case service.ErrMalformedIdentifier:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case service.ErrRestaurantNotFound, service.ErrMenuItemNotFound:
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
