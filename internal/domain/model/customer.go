package model

import "time"

// Customer represents a buyer account referenced by orders.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	City      string
	CreatedAt time.Time
}
