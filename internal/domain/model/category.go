package model

import "time"

// Category groups products for browsing and filtering.
type Category struct {
	ID           int64
	Name         string
	Description  string
	CreatedAt    time.Time
	ProductCount int64
}
