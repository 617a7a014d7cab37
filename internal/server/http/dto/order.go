package dto

import (
	"time"

	"github.com/devansh6012/online-store-test/internal/domain/model"
)

// OrderItemRequest is one line of a checkout request. The identifier key is
// "id": line items are sent as product projections, not as order rows.
type OrderItemRequest struct {
	ProductID int64   `json:"id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

// ShippingRequest carries the delivery address snapshot.
type ShippingRequest struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

// CreateOrderRequest describes the checkout payload. The total carries no
// required tag: zero is a legitimate value for a fully discounted cart and
// is validated against the recomputed line total instead.
type CreateOrderRequest struct {
	Items       []OrderItemRequest `json:"items" binding:"required,dive"`
	TotalAmount float64            `json:"totalAmount"`
	Shipping    ShippingRequest    `json:"shippingDetails" binding:"required"`
}

// OrderCreatedResponse acknowledges a successful checkout.
type OrderCreatedResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// Lines converts request items to domain order lines.
func (r CreateOrderRequest) Lines() []model.OrderLine {
	lines := make([]model.OrderLine, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, model.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return lines
}

// ShippingDetails converts the request shipping block.
func (r CreateOrderRequest) ShippingDetails() model.ShippingDetails {
	return model.ShippingDetails{
		Address:    r.Shipping.Address,
		City:       r.Shipping.City,
		PostalCode: r.Shipping.PostalCode,
		Phone:      r.Shipping.Phone,
	}
}

// StatusUpdateRequest carries the target order status.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse is one stored order line.
type OrderItemResponse struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name,omitempty"`
	ProductImage string  `json:"product_image,omitempty"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// OrderResponse is the public projection of an order.
type OrderResponse struct {
	ID            int64               `json:"id"`
	UserID        int64               `json:"user_id"`
	TotalAmount   float64             `json:"total_amount"`
	Status        string              `json:"status"`
	Address       string              `json:"address"`
	City          string              `json:"city"`
	PostalCode    string              `json:"postal_code"`
	Phone         string              `json:"phone"`
	ItemCount     int64               `json:"item_count,omitempty"`
	ProductNames  string              `json:"product_names,omitempty"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	CustomerName  string              `json:"customer_name,omitempty"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ToOrderResponse converts the domain order.
func ToOrderResponse(o model.Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		Address:       o.Shipping.Address,
		City:          o.Shipping.City,
		PostalCode:    o.Shipping.PostalCode,
		Phone:         o.Shipping.Phone,
		ItemCount:     o.ItemCount,
		ProductNames:  o.ProductNames,
		CustomerEmail: o.CustomerEmail,
		CustomerName:  o.CustomerName,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}
	return resp
}

// ToOrderResponses converts an order slice.
func ToOrderResponses(orders []model.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, ToOrderResponse(o))
	}
	return result
}
