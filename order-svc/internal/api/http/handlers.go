package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"redpotion-core/order-svc/internal/domain"
	"redpotion-core/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders service.OrderServiceInterface
	Slips  service.SlipServiceInterface
}

func NewHandler(orders service.OrderServiceInterface, slips service.SlipServiceInterface) *Handler {
	return &Handler{Orders: orders, Slips: slips}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/order", h.createOrder).Methods("POST")
	r.HandleFunc("/api/order/my-orders", h.listMyOrders).Methods("GET")
	r.HandleFunc("/api/order/upload-payment-slip", h.uploadPaymentSlip).Methods("POST")
	r.HandleFunc("/api/order/slips/{id}/review", h.reviewSlip).Methods("PUT")
	r.HandleFunc("/api/order/{id}/slip-form", h.slipForm).Methods("GET")
	r.HandleFunc("/api/order/{id}/promptpay-qr", h.promptPayQR).Methods("GET")
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.Create(r.Context(), &order); err != nil {
		switch err {
		case service.ErrInvalidOrderPayload:
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listMyOrders(w http.ResponseWriter, r *http.Request) {
	customerID := r.Header.Get("X-Customer-ID")
	if customerID == "" {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	orders, err := h.Orders.ListMyOrders(r.Context(), customerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) slipForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.Slips.OpenUploadForm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeSlipError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (h *Handler) uploadPaymentSlip(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("slip")
	if err != nil {
		http.Error(w, "Slip image is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Error reading the file", http.StatusBadRequest)
		return
	}

	submission := domain.SlipSubmission{
		OrderID:        r.FormValue("orderId"),
		OrderNumber:    r.FormValue("orderNumber"),
		FileName:       header.Filename,
		ContentType:    header.Header.Get("Content-Type"),
		FileSize:       header.Size,
		FileData:       data,
		TransferAmount: r.FormValue("transferAmount"),
		TransferDate:   r.FormValue("transferDate"),
		TransferTime:   r.FormValue("transferTime"),
		TransferRef:    r.FormValue("transferRef"),
		AccountName:    r.FormValue("accountName"),
	}

	slip, err := h.Slips.Submit(r.Context(), submission)
	if err != nil {
		writeSlipError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, slip)
}

func (h *Handler) reviewSlip(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Approve    bool   `json:"approve"`
		AdminNotes string `json:"admin_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slip, err := h.Slips.Review(r.Context(), mux.Vars(r)["id"], payload.Approve, payload.AdminNotes)
	if err != nil {
		writeSlipError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, slip)
}

func (h *Handler) promptPayQR(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.PromptPayQR(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeSlipError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func writeSlipError(w http.ResponseWriter, err error) {
	switch err {
	case service.ErrOrderNotFound, service.ErrSlipNotFound:
		http.Error(w, err.Error(), http.StatusNotFound)
	case service.ErrSlipMissingFields, service.ErrSlipBadAmount,
		service.ErrSlipFileType, service.ErrSlipFileTooLarge,
		service.ErrSlipBadTimestamp:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case service.ErrSlipAlreadyApproved, service.ErrSlipNotReviewable,
		service.ErrPaymentNotSlipBased:
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
