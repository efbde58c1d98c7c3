package response

import "atelier_couture/internal/domain/reporting"

type StatsResponse struct {
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	ByQuantity   bool            `json:"by_quantity"`
	OrdersCount  int             `json:"orders_count"`
	TotalRevenue float64         `json:"total_revenue"`
	TotalProfit  float64         `json:"total_profit"`
	Orders       []OrderResponse `json:"orders"`
}

func FromMonthlySummary(month, year int, byQuantity bool, sum reporting.MonthlySummary) StatsResponse {
	return StatsResponse{
		Month:        month,
		Year:         year,
		ByQuantity:   byQuantity,
		OrdersCount:  sum.OrdersCount,
		TotalRevenue: sum.TotalRevenue,
		TotalProfit:  sum.TotalProfit,
		Orders:       FromOrders(sum.Orders),
	}
}
