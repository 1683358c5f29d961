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

type SaleHandler struct {
	Service *services.SaleService
}

func NewSaleHandler(s *services.SaleService) *SaleHandler {
	return &SaleHandler{Service: s}
}

// CompleteSale turns the submitted cart and form state into a
// persisted sale.
func (h *SaleHandler) CompleteSale(w http.ResponseWriter, r *http.Request) {
	var req models.CompleteSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sale, err := h.Service.CompleteSale(context.Background(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, sale)
}

func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	sale, err := h.Service.Get(context.Background(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, sale)
}

func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	if customerID := r.URL.Query().Get("customer_id"); customerID != "" {
		sales, err := h.Service.ListByCustomer(ctx, customerID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, sales)
		return
	}

	sales, err := h.Service.List(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, sales)
}

// AddPayment records a partial or full payment against the sale and
// returns the sale with its refreshed breakdown.
func (h *SaleHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.AddPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sale, err := h.Service.AddPayment(context.Background(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, sale)
}

func (h *SaleHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateSaleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sale, err := h.Service.UpdateStatus(context.Background(), id, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, sale)
}

func (h *SaleHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Delete(context.Background(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
