package interfaces

import (
	"context"
	"time"

	"atelier_couture/internal/domain/reporting"
)

// IStatsCache caches monthly summaries between requests. A missing entry is
// (zero, false, nil), never an error.
type IStatsCache interface {
	GetSummary(ctx context.Context, key string) (reporting.MonthlySummary, bool, error)
	SetSummary(ctx context.Context, key string, summary reporting.MonthlySummary, ttl time.Duration) error
	InvalidateAll(ctx context.Context) error
}
