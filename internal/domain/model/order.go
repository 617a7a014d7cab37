package model

import "time"

// OrderStatus describes the order fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the five known statuses.
// Transition legality between statuses is intentionally not enforced.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ShippingDetails is the address snapshot copied into an order at creation
// time. Later changes to the user's profile never affect placed orders.
type ShippingDetails struct {
	Address    string
	City       string
	PostalCode string
	Phone      string
}

// OrderLine is one requested product/quantity/price tuple of a checkout.
type OrderLine struct {
	ProductID int64
	Quantity  int
	Price     float64
}

// Order is a placed checkout with its shipping snapshot.
type Order struct {
	ID          int64
	UserID      int64
	TotalAmount float64
	Status      OrderStatus
	Shipping    ShippingDetails
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Aggregates populated by list queries.
	ItemCount    int64
	ProductNames string

	// Customer fields populated by admin joins.
	CustomerEmail string
	CustomerName  string

	Items []OrderItem
}

// OrderItem is a persisted order line. Price is the unit price captured at
// order time, immutable even if the product is later repriced.
type OrderItem struct {
	ID           int64
	OrderID      int64
	ProductID    int64
	Quantity     int
	Price        float64
	ProductName  string
	ProductImage string
}

// OrderStats aggregates order counts per status for the admin dashboard.
type OrderStats struct {
	Pending    int64
	Processing int64
	Shipped    int64
	Delivered  int64
	Cancelled  int64
}

// StoreStats is the admin dashboard summary.
type StoreStats struct {
	Products int64
	Users    int64
	Orders   int64
	Revenue  float64
	ByStatus OrderStats
}
