package dto

import (
	"time"

	"github.com/devansh6012/online-store-test/internal/domain/model"
)

// StatsResponse aggregates store counters for the dashboard.
type StatsResponse struct {
	Products int64            `json:"products"`
	Users    int64            `json:"users"`
	Orders   int64            `json:"orders"`
	Revenue  float64          `json:"revenue"`
	ByStatus map[string]int64 `json:"orders_by_status"`
}

// ToStatsResponse converts the domain stats.
func ToStatsResponse(s *model.StoreStats) StatsResponse {
	return StatsResponse{
		Products: s.Products,
		Users:    s.Users,
		Orders:   s.Orders,
		Revenue:  s.Revenue,
		ByStatus: map[string]int64{
			string(model.OrderStatusPending):    s.ByStatus.Pending,
			string(model.OrderStatusProcessing): s.ByStatus.Processing,
			string(model.OrderStatusShipped):    s.ByStatus.Shipped,
			string(model.OrderStatusDelivered):  s.ByStatus.Delivered,
			string(model.OrderStatusCancelled):  s.ByStatus.Cancelled,
		},
	}
}

// UserSummaryResponse is the admin listing projection of an account.
type UserSummaryResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       string    `json:"role"`
	OrderCount int64     `json:"order_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToUserSummaryResponses converts the admin user listing.
func ToUserSummaryResponses(users []model.UserSummary) []UserSummaryResponse {
	result := make([]UserSummaryResponse, 0, len(users))
	for _, u := range users {
		result = append(result, UserSummaryResponse{
			ID:         u.ID,
			Email:      u.Email,
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			Role:       string(u.Role),
			OrderCount: u.OrderCount,
			CreatedAt:  u.CreatedAt,
		})
	}
	return result
}

// RoleUpdateRequest carries the target account role.
type RoleUpdateRequest struct {
	Role string `json:"role" binding:"required"`
}
