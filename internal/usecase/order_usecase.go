package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"atelier_couture/internal/domain/entities"
	"atelier_couture/internal/domain/reporting"
	"atelier_couture/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrMissingClientName     = errors.New("missing client name")
	ErrMissingModel          = errors.New("missing model")
	ErrMissingFabricColor    = errors.New("missing fabric color")
	ErrMissingSize           = errors.New("missing size")
	ErrInvalidFabricPrice    = errors.New("invalid fabric price")
	ErrInvalidSellingPrice   = errors.New("invalid selling price")
	ErrInvalidOrderCount     = errors.New("invalid order count")
	ErrInvalidAdvancePayment = errors.New("invalid advance payment")
)

// OrderInput is the full editable field set. Every edit resubmits the whole
// set; there is no partial-field patch at this level. id and both timestamps
// are always assigned here, never accepted from the caller.
type OrderInput struct {
	ClientName       string
	Model            string
	FabricColor      string
	Size             string
	FabricPrice      float64
	SellingPrice     float64
	OrderCount       *int
	AdvancePayment   *float64
	DeliveryDate     *time.Time
	DeliveryLocation string
	ModelImage       string
	Status           *int
}

// IOrderUseCase exposes the order CRUD plus the filtered listing backing the
// main screen.
type IOrderUseCase interface {
	List(ctx context.Context, search string, deliveryDate *time.Time) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Create(ctx context.Context, in OrderInput) (entities.Order, error)
	Update(ctx context.Context, id string, in OrderInput) (entities.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderUseCase struct {
	repo  interfaces.IOrderRepository
	cache interfaces.IStatsCache
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, cache interfaces.IStatsCache) *OrderUseCase {
	return &OrderUseCase{repo: repo, cache: cache}
}

// List fetches the backend snapshot (newest first) and applies the text and
// delivery-day filters in memory. Filtering never reorders the snapshot.
func (u *OrderUseCase) List(ctx context.Context, search string, deliveryDate *time.Time) ([]entities.Order, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return reporting.Filter(orders, search, deliveryDate), nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) Create(ctx context.Context, in OrderInput) (entities.Order, error) {
	if err := validateOrderInput(in); err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o := orderFromInput(in)
	o.ID = uuid.NewString()
	o.CreatedAt = now
	o.UpdatedAt = now

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	invalidateStats(ctx, u.cache)
	return created, nil
}

func (u *OrderUseCase) Update(ctx context.Context, id string, in OrderInput) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if err := validateOrderInput(in); err != nil {
		return entities.Order{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	o := orderFromInput(in)
	o.ID = existing.ID
	o.CreatedAt = existing.CreatedAt

	return saveOrder(ctx, u.repo, u.cache, o)
}

// Delete removes the record immediately; there is no soft delete.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOrderNotFound
	}
	invalidateStats(ctx, u.cache)
	return nil
}

// saveOrder resubmits the full record with a refreshed updated_at and drops
// the cached statistics afterwards. Every mutation that rewrites an existing
// order goes through here so both invariants live in one place.
func saveOrder(ctx context.Context, repo interfaces.IOrderRepository, cache interfaces.IStatsCache, o entities.Order) (entities.Order, error) {
	o.UpdatedAt = time.Now().UTC()

	updated, err := repo.Update(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	invalidateStats(ctx, cache)
	return updated, nil
}

func invalidateStats(ctx context.Context, cache interfaces.IStatsCache) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}

// orderFromInput builds the record the repository will persist. Profit is
// derived here at write time so the stored value always matches
// selling_price - fabric_price.
func orderFromInput(in OrderInput) entities.Order {
	return entities.Order{
		ClientName:       strings.TrimSpace(in.ClientName),
		Model:            strings.TrimSpace(in.Model),
		FabricColor:      strings.TrimSpace(in.FabricColor),
		Size:             strings.TrimSpace(in.Size),
		FabricPrice:      in.FabricPrice,
		SellingPrice:     in.SellingPrice,
		Profit:           entities.DeriveProfit(in.FabricPrice, in.SellingPrice),
		OrderCount:       in.OrderCount,
		AdvancePayment:   in.AdvancePayment,
		DeliveryDate:     in.DeliveryDate,
		DeliveryLocation: strings.TrimSpace(in.DeliveryLocation),
		ModelImage:       strings.TrimSpace(in.ModelImage),
		Status:           in.Status,
	}
}

func validateOrderInput(in OrderInput) error {
	switch {
	case strings.TrimSpace(in.ClientName) == "":
		return ErrMissingClientName
	case strings.TrimSpace(in.Model) == "":
		return ErrMissingModel
	case strings.TrimSpace(in.FabricColor) == "":
		return ErrMissingFabricColor
	case strings.TrimSpace(in.Size) == "":
		return ErrMissingSize
	case in.FabricPrice < 0:
		return ErrInvalidFabricPrice
	case in.SellingPrice < 0:
		return ErrInvalidSellingPrice
	case in.OrderCount != nil && *in.OrderCount < 1:
		return ErrInvalidOrderCount
	case in.AdvancePayment != nil && *in.AdvancePayment < 0:
		return ErrInvalidAdvancePayment
	}
	return nil
}
