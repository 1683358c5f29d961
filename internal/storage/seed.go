package storage

import (
	"time"

	"optic-backend/internal/models"
)

// SeedSnapshot is the demo dataset loaded when no snapshot file exists
// yet, or when the stored blob cannot be parsed.
func SeedSnapshot() Snapshot {
	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}

	return Snapshot{
		Customers: []models.Customer{
			{
				ID:        "1",
				FirstName: "Jean",
				LastName:  "Dupont",
				Email:     "jean@example.com",
				Phone:     "0612345678",
				Address:   "12 Rue de Paris, Lyon",
				BirthDate: "1985-05-20",
				CreatedAt: date("2023-01-10"),
			},
			{
				ID:        "2",
				FirstName: "Marie",
				LastName:  "Curie",
				Email:     "marie@example.com",
				Phone:     "0698765432",
				Address:   "45 Avenue des Sciences, Paris",
				BirthDate: "1990-11-07",
				CreatedAt: date("2023-03-15"),
			},
		},
		Products: []models.Product{
			{ID: "101", Brand: "Ray-Ban", Model: "Wayfarer", Reference: "RB2140", Type: "Sun", Category: "Sunglasses", Color: "Black", PurchasePrice: 80, SellingPrice: 150, Quantity: 12, MinStock: 3},
			{ID: "102", Brand: "Oakley", Model: "Holbrook", Reference: "OO9102", Type: "Sun", Category: "Sunglasses", Color: "Matte Black", PurchasePrice: 70, SellingPrice: 130, Quantity: 2, MinStock: 5},
			{ID: "103", Brand: "Persol", Model: "PO3092V", Reference: "3092V", Type: "Optical", Category: "Frames", Color: "Havana", PurchasePrice: 110, SellingPrice: 220, Quantity: 8, MinStock: 2},
		},
		Staff: []models.StaffMember{
			{
				ID:        "st1",
				FirstName: "Admin",
				LastName:  "Demo",
				Email:     "demo@optic.local",
				Phone:     "0600000000",
				Role:      models.RoleAdministrator,
				HireDate:  "2024-01-01",
				Status:    models.StaffActive,
			},
		},
		Sales: []models.Sale{
			{
				ID:            "C0001",
				CustomerID:    "1",
				TotalAmount:   150,
				Discount:      0,
				TaxRate:       20,
				PaymentMethod: models.PayCard,
				Payments: []models.Payment{
					{ID: "p1", Amount: 150, Method: models.PayCard, Date: date("2023-10-01")},
				},
				Status:    models.SaleDelivered,
				CreatedAt: date("2023-10-01"),
			},
			{
				ID:            "C0002",
				CustomerID:    "2",
				TotalAmount:   220,
				Discount:      20,
				TaxRate:       20,
				PaymentMethod: models.PayCash,
				Payments: []models.Payment{
					{ID: "p2", Amount: 100, Method: models.PayCash, Date: date("2023-10-05")},
				},
				Status:    models.SaleDelivered,
				CreatedAt: date("2023-10-05"),
			},
		},
		Appointments: []models.Appointment{
			{ID: "a1", CustomerID: "1", StaffID: "st1", Date: date("2024-06-03"), Status: models.AppointmentPlanned, Notes: "Annual eye exam"},
			{ID: "a2", CustomerID: "2", StaffID: "st1", Date: date("2024-06-04"), Status: models.AppointmentConfirmed},
		},
		Settings: models.ShopSettings{
			Name:         "Optique Belle Vue",
			ICE:          "001234567890001",
			Address:      "Rue Mohamed V, Casablanca",
			Phone:        "05 22 12 34 56",
			TVA:          20,
			PrimaryColor: "#f97316",
		},
	}
}
