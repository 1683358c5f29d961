package handlers

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"net/http"

	"optic-backend/internal/services"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// GetInvoice streams the sale's invoice PDF as a download.
func (h *ReportHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	data, name, err := h.Service.GenerateInvoicePDF(context.Background(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.Write(data)
}

// GetDeliveryNote streams the purchase order's goods-receipt PDF.
func (h *ReportHandler) GetDeliveryNote(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	data, name, err := h.Service.GenerateDeliveryNotePDF(context.Background(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.Write(data)
}

// ExportInvoices bundles every sale invoice into one zip download.
func (h *ReportHandler) ExportInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Service.GenerateBulkInvoices(context.Background())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range invoices {
		f, err := zw.Create(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := f.Write(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	if err := zw.Close(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.zip"`)
	w.Write(buf.Bytes())
}
