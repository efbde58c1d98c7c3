package reporting

import (
	"time"

	"atelier_couture/internal/domain/entities"
)

// Options selects the aggregation policy for Monthly.
//
// The statistics screen historically sums per-unit selling price and profit
// even for multi-piece orders, while the order detail multiplies by
// quantity. MultiplyByQuantity exposes that choice instead of hard-coding
// either behavior; false reproduces the historical statistics.
type Options struct {
	MultiplyByQuantity bool
}

// MonthlySummary aggregates the orders created in one calendar month.
// A month with no orders yields zero aggregates and an empty subset; that is
// an expected result, not an error.
type MonthlySummary struct {
	OrdersCount  int              `json:"orders_count"`
	TotalRevenue float64          `json:"total_revenue"`
	TotalProfit  float64          `json:"total_profit"`
	Orders       []entities.Order `json:"orders"`
}

// Monthly selects the orders whose creation timestamp falls in the given
// month and year and sums their revenue and profit. The subset keeps the
// input order (the gateway lists newest first). Records with a zero
// created_at never match.
func Monthly(orders []entities.Order, month time.Month, year int, opts Options) MonthlySummary {
	sum := MonthlySummary{Orders: []entities.Order{}}
	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		if o.CreatedAt.Month() != month || o.CreatedAt.Year() != year {
			continue
		}

		weight := 1.0
		if opts.MultiplyByQuantity {
			weight = float64(o.Quantity())
		}

		sum.OrdersCount++
		sum.TotalRevenue += o.SellingPrice * weight
		sum.TotalProfit += o.Profit * weight
		sum.Orders = append(sum.Orders, o)
	}
	return sum
}
