package domain

import "time"

type Customer struct {
	ID        string
	Name      string
	Document  string
	Email     string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
