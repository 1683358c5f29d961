package models

import "time"

type Customer struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	BirthDate string    `json:"birth_date"`
	Notes     string    `json:"notes,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName is the name shown on invoices and in search results.
func (c *Customer) DisplayName() string {
	return c.FirstName + " " + c.LastName
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	BirthDate string `json:"birth_date"`
	Notes     string `json:"notes"`
	PhotoURL  string `json:"photo_url"`
}

// UpdateCustomerRequest carries partial field changes. Nil fields are
// preserved on the existing record (shallow merge).
type UpdateCustomerRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	BirthDate *string `json:"birth_date"`
	Notes     *string `json:"notes"`
	PhotoURL  *string `json:"photo_url"`
}
