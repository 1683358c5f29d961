package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"optic-backend/internal/models"
	"optic-backend/internal/services"
	"optic-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type PurchaseOrderHandler struct {
	Service *services.PurchaseOrderService
}

func NewPurchaseOrderHandler(s *services.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{Service: s}
}

func (h *PurchaseOrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePurchaseOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.Service.CreateOrder(context.Background(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, order)
}

func (h *PurchaseOrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.Service.GetOrder(context.Background(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, order)
}

func (h *PurchaseOrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	if query := r.URL.Query().Get("q"); query != "" {
		orders, err := h.Service.SearchOrders(ctx, query)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, orders)
		return
	}

	orders, err := h.Service.ListOrders(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, orders)
}

// SuggestInvoiceNumber returns the next pre-filled goods-receipt
// reference. The client may override it freely.
func (h *PurchaseOrderHandler) SuggestInvoiceNumber(w http.ResponseWriter, r *http.Request) {
	number := h.Service.SuggestInvoiceNumber(context.Background())
	utils.JSON(w, http.StatusOK, map[string]string{"invoice_number": number})
}

func (h *PurchaseOrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.DeleteOrder(context.Background(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
