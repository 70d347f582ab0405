package model

import "time"

// User represents a staff account allowed to call the API.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
