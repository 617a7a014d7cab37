package model

import "time"

// Product is a sellable catalog item. Stock is mutated only by the order
// workflow: decremented at creation, incremented at cancellation.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Price        float64
	CategoryID   *int64
	CategoryName string
	Stock        int
	Images       []string
	CreatedAt    time.Time
}

// ProductImage binds an uploaded binary to its product row.
type ProductImage struct {
	ID        int64
	ProductID int64
	Filename  string
	Filepath  string
	CreatedAt time.Time
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	CategoryID *int64
	Search     string
	Limit      int
	Offset     int
}
