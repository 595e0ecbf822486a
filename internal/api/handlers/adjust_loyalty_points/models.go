package adjust_loyalty_points

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/loyalty"
)

// AdjustPointsRequest HTTP request model
type AdjustPointsRequest struct {
	Action      string  `json:"action"` // add | remove | set
	Points      int     `json:"points"`
	Description *string `json:"description,omitempty"`
}

// AdjustPointsResponse баланс после операции
type AdjustPointsResponse struct {
	CustomerID    uuid.UUID `json:"customerId"`
	Action        string    `json:"action"`
	PointsChange  int       `json:"pointsChange"`
	PointsBalance int       `json:"loyaltyPoints"`
}

func (r *AdjustPointsRequest) ToServiceRequest(customerID uuid.UUID) loyalty.AdjustRequest {
	return loyalty.AdjustRequest{
		CustomerID:  customerID,
		Action:      domain.LoyaltyAction(r.Action),
		Points:      r.Points,
		Description: r.Description,
	}
}

func FromLedgerEntry(e *loyalty.LedgerEntry) *AdjustPointsResponse {
	return &AdjustPointsResponse{
		CustomerID:    e.CustomerID,
		Action:        string(e.Action),
		PointsChange:  e.PointsChange,
		PointsBalance: e.PointsBalance,
	}
}
