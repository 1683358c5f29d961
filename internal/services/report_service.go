package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"optic-backend/internal/models"
	"optic-backend/internal/repositories"
	"optic-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService renders sales and purchase orders into printable PDF
// documents using the shop identity from settings.
type ReportService struct {
	Sales     *repositories.SaleRepository
	Customers *repositories.CustomerRepository
	Staff     *repositories.StaffRepository
	Suppliers *repositories.SupplierRepository
	Orders    *repositories.PurchaseOrderRepository
	Settings  *repositories.SettingsRepository
}

func NewReportService(
	sales *repositories.SaleRepository,
	customers *repositories.CustomerRepository,
	staff *repositories.StaffRepository,
	suppliers *repositories.SupplierRepository,
	orders *repositories.PurchaseOrderRepository,
	settings *repositories.SettingsRepository,
) *ReportService {
	return &ReportService{
		Sales:     sales,
		Customers: customers,
		Staff:     staff,
		Suppliers: suppliers,
		Orders:    orders,
		Settings:  settings,
	}
}

// hexToRGB parses a #rrggbb theme color. Invalid values fall back to
// the default orange accent.
func hexToRGB(hex string) (int, int, int) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return 249, 115, 22
	}
	r, err1 := strconv.ParseInt(h[0:2], 16, 0)
	g, err2 := strconv.ParseInt(h[2:4], 16, 0)
	b, err3 := strconv.ParseInt(h[4:6], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return 249, 115, 22
	}
	return int(r), int(g), int(b)
}

func sanitizeFileName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}

// InvoiceFileName derives the download name from the customer name and
// the sale date.
func InvoiceFileName(customer *models.Customer, sale *models.Sale) string {
	name := "Unknown_Client"
	if customer != nil {
		name = sanitizeFileName(customer.LastName + " " + customer.FirstName)
	}
	return fmt.Sprintf("%s_%s.pdf", name, timeutil.Format(sale.CreatedAt, "2006-01-02"))
}

// DeliveryNoteFileName derives the download name from the supplier
// name and the order date.
func DeliveryNoteFileName(supplier *models.Supplier, order *models.PurchaseOrder) string {
	name := "Unknown_Supplier"
	if supplier != nil {
		name = sanitizeFileName(supplier.Name)
	}
	return fmt.Sprintf("%s_%s.pdf", name, order.Date)
}

// GenerateInvoicePDF renders the invoice for a sale: a shop copy and a
// customer copy on one page, separated by a dashed cut line.
func (s *ReportService) GenerateInvoicePDF(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := s.Sales.Get(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	// Orphaned references are tolerated: a deleted customer renders
	// as an unknown client rather than failing the document.
	customer, _ := s.Customers.Get(ctx, sale.CustomerID)
	var staff *models.StaffMember
	if sale.StaffID != "" {
		staff, _ = s.Staff.Get(ctx, sale.StaffID)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	s.renderInvoiceCopy(pdf, "SHOP COPY", sale, customer, staff, &settings)

	// Dashed cut line between the two copies
	y := pdf.GetY() + 6
	pdf.SetDashPattern([]float64{2, 2}, 0)
	pdf.SetDrawColor(150, 150, 150)
	pdf.Line(10, y, 200, y)
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetY(y + 6)

	s.renderInvoiceCopy(pdf, "CUSTOMER COPY", sale, customer, staff, &settings)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), InvoiceFileName(customer, sale), nil
}

func (s *ReportService) renderInvoiceCopy(pdf *gofpdf.Fpdf, label string, sale *models.Sale, customer *models.Customer, staff *models.StaffMember, settings *models.ShopSettings) {
	r, g, b := hexToRGB(settings.PrimaryColor)

	// Header: shop identity with the theme accent
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(130, 8, settings.Name, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(60, 8, label, "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(190, 4, settings.Address, "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 4, fmt.Sprintf("Tel: %s - ICE: %s", settings.Phone, settings.ICE), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Invoice identity
	clientName := "Unknown client"
	if customer != nil {
		clientName = customer.DisplayName()
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("Invoice %s", sale.ID), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(95, 6, timeutil.Format(sale.CreatedAt, "02-Jan-2006 03:04 PM"), "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 5, fmt.Sprintf("Client: %s", clientName), "", 0, "L", false, 0, "")
	if staff != nil {
		pdf.CellFormat(95, 5, fmt.Sprintf("Served by: %s", staff.DisplayName()), "", 1, "R", false, 0, "")
	} else {
		pdf.CellFormat(95, 5, "", "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)

	// Item table
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 6, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 6, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 6, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(50, 6, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 8)
	for _, item := range sale.Items {
		name := item.Brand + " " + item.Model
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		pdf.CellFormat(70, 5, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 5, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 5, fmt.Sprintf("%.2f MAD", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 5, fmt.Sprintf("%.2f MAD", item.Price*float64(item.Quantity)), "1", 1, "R", false, 0, "")
	}

	// Totals and payment summary
	breakdown := Breakdown(sale)
	pdf.SetFont("Arial", "", 8)
	if sale.Discount > 0 {
		pdf.CellFormat(140, 5, "Discount", "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 5, fmt.Sprintf("-%.2f MAD", sale.Discount), "", 1, "R", false, 0, "")
	}
	pdf.CellFormat(140, 5, fmt.Sprintf("Total (VAT %.0f%% incl.)", sale.TaxRate), "", 0, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(50, 5, fmt.Sprintf("%.2f MAD", sale.TotalAmount), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(140, 5, fmt.Sprintf("Paid (%s)", breakdown.Status), "", 0, "R", false, 0, "")
	pdf.CellFormat(50, 5, fmt.Sprintf("%.2f MAD", breakdown.TotalPaid), "", 1, "R", false, 0, "")
	if breakdown.Remaining > 0 {
		pdf.SetFont("Arial", "B", 8)
		pdf.CellFormat(140, 5, "Remaining", "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 5, fmt.Sprintf("%.2f MAD", breakdown.Remaining), "", 1, "R", false, 0, "")
	}

	if sale.Prescription != nil {
		s.renderPrescription(pdf, sale.Prescription)
	}
}

func (s *ReportService) renderPrescription(pdf *gofpdf.Fpdf, p *models.SalePrescription) {
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 5, fmt.Sprintf("Prescription - %s vision", p.VisionType), "1", 1, "L", true, 0, "")

	writeMeasure := func(label string, m *models.VisionMeasure) {
		if m == nil {
			return
		}
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(40, 5, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(38, 5, fmt.Sprintf("SPH %.2f", m.Sphere), "1", 0, "C", false, 0, "")
		pdf.CellFormat(38, 5, fmt.Sprintf("CYL %.2f", m.Cylinder), "1", 0, "C", false, 0, "")
		pdf.CellFormat(37, 5, fmt.Sprintf("AXIS %d", m.Axis), "1", 0, "C", false, 0, "")
		pdf.CellFormat(37, 5, fmt.Sprintf("ADD %.2f", m.Addition), "1", 1, "C", false, 0, "")
	}
	writeMeasure("Distance - Right", p.DistanceRight)
	writeMeasure("Distance - Left", p.DistanceLeft)
	writeMeasure("Near - Right", p.NearRight)
	writeMeasure("Near - Left", p.NearLeft)

	pdf.SetFont("Arial", "", 8)
	if p.GlassType != "" || p.InsuranceType != "" {
		pdf.CellFormat(95, 5, fmt.Sprintf("Glass: %s", p.GlassType), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, fmt.Sprintf("Insurance: %s", p.InsuranceType), "", 1, "L", false, 0, "")
	}
	if p.DoctorName != "" {
		pdf.CellFormat(190, 5, fmt.Sprintf("Prescribed by %s %s", p.DoctorName, p.DoctorPhone), "", 1, "L", false, 0, "")
	}
}

// GenerateDeliveryNotePDF renders the goods-receipt document for a
// purchase order.
func (s *ReportService) GenerateDeliveryNotePDF(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	settings, err := s.Settings.Get(ctx)
	if err != nil {
		return nil, "", err
	}
	supplier, _ := s.Suppliers.Get(ctx, order.SupplierID)

	r, g, b := hexToRGB(settings.PrimaryColor)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(190, 10, settings.Name+" - Goods Receipt", "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(190, 5, settings.Address, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	supplierName := "Unknown supplier"
	if supplier != nil {
		supplierName = supplier.Name
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("Invoice No: %s", order.InvoiceNumber), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Date: %s", order.Date), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(95, 5, fmt.Sprintf("Supplier: %s", supplierName), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, fmt.Sprintf("Payment: %s (%s)", order.PaymentMethod, order.PaymentStatus), "", 1, "R", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(80, 7, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, item := range order.Items {
		name := item.Brand + " " + item.Model
		if len(name) > 45 {
			name = name[:42] + "..."
		}
		pdf.CellFormat(80, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f MAD", item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f MAD", float64(item.Quantity)*item.UnitPrice), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(190, 8, fmt.Sprintf("Total: %.2f MAD", order.TotalAmount), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	if order.Notes != "" {
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(190, 5, "Notes: "+order.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), DeliveryNoteFileName(supplier, order), nil
}

// GenerateBulkInvoices renders every sale's invoice over a small
// worker pool and returns them keyed by file name. The sale id goes
// into the key: one customer can buy several times on the same day,
// and the per-sale download name alone would collide.
func (s *ReportService) GenerateBulkInvoices(ctx context.Context) (map[string][]byte, error) {
	sales, err := s.Sales.List(ctx)
	if err != nil {
		return nil, err
	}

	type pdfResult struct {
		name string
		data []byte
		err  error
	}

	jobs := make(chan string, len(sales))
	results := make(chan pdfResult, len(sales))

	var wg sync.WaitGroup
	numWorkers := 5
	if len(sales) < numWorkers {
		numWorkers = len(sales)
	}
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for saleID := range jobs {
				data, name, err := s.GenerateInvoicePDF(ctx, saleID)
				name = fmt.Sprintf("%s_%s.pdf", strings.TrimSuffix(name, ".pdf"), saleID)
				results <- pdfResult{name: name, data: data, err: err}
			}
		}()
	}

	for _, sale := range sales {
		jobs <- sale.ID
	}
	close(jobs)
	wg.Wait()
	close(results)

	out := make(map[string][]byte, len(sales))
	for res := range results {
		if res.err != nil {
			return nil, res.err
		}
		out[res.name] = res.data
	}
	return out, nil
}
