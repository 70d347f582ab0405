package dto

import "time"

// CustomerRequest describes a new customer payload.
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// CustomerUpdateRequest carries optional contact updates.
type CustomerUpdateRequest struct {
	Phone *string `json:"phone"`
	City  *string `json:"city"`
}

// CustomerResponse describes a customer record.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}
