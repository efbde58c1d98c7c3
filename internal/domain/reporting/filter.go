// Package reporting holds the pure transformations behind the order list and
// the statistics screen: text/date filtering and the monthly summary. All
// functions here are synchronous, total for any well-typed input, and never
// touch the network or mutate their arguments.
package reporting

import (
	"strings"
	"time"

	"atelier_couture/internal/domain/entities"
)

// Filter narrows an order snapshot by free-text search and an exact delivery
// day. Both predicates compose with AND and the relative order of the input
// is preserved.
//
//   - search matches case-insensitively as a substring of client name or
//     model; only the empty string keeps everything, whitespace is matched
//     literally.
//   - deliveryDate matches on the calendar day (year, month, day); orders
//     without a delivery date never match while a date filter is active.
func Filter(orders []entities.Order, search string, deliveryDate *time.Time) []entities.Order {
	needle := strings.ToLower(search)

	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if needle != "" && !matchesText(o, needle) {
			continue
		}
		if deliveryDate != nil && !matchesDay(o.DeliveryDate, *deliveryDate) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesText(o entities.Order, needle string) bool {
	return strings.Contains(strings.ToLower(o.ClientName), needle) ||
		strings.Contains(strings.ToLower(o.Model), needle)
}

func matchesDay(d *time.Time, want time.Time) bool {
	if d == nil || d.IsZero() {
		return false
	}
	return d.Year() == want.Year() && d.Month() == want.Month() && d.Day() == want.Day()
}
