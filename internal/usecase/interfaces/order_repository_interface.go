package interfaces

import (
	"context"

	"atelier_couture/internal/domain/entities"
)

// IOrderRepository abstracts the hosted data backend for orders.
//
// Conventions shared with the DynamoDB implementation:
//   - List returns the full snapshot ordered by created_at descending.
//   - GetByID and Update return a zero-value Order when the id does not
//     exist; the use case maps that to its not-found error.
//   - Delete reports whether a record was actually removed.
type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}
