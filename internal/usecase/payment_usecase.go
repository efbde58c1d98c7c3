package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"atelier_couture/internal/domain/entities"
	"atelier_couture/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidPaymentAmount  = errors.New("invalid payment amount")
	ErrPaymentNotApproved    = errors.New("payment not approved")
	ErrPaymentGatewayMissing = errors.New("payment gateway not configured")
)

// IPaymentUseCase records an advance payment against an order.
//
// The payment is processed by the external provider first; only after it is
// approved does the order get resubmitted with the bumped advance. The order
// record is always rewritten in full; edits never patch single fields.
type IPaymentUseCase interface {
	RecordAdvance(ctx context.Context, orderID string, amount float64, providerPayload json.RawMessage) (entities.Order, error)
}

type PaymentUseCase struct {
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	cache   interfaces.IStatsCache
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, cache interfaces.IStatsCache) *PaymentUseCase {
	return &PaymentUseCase{orders: orders, gateway: gateway, cache: cache}
}

func (u *PaymentUseCase) RecordAdvance(ctx context.Context, orderID string, amount float64, providerPayload json.RawMessage) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if amount <= 0 {
		return entities.Order{}, ErrInvalidPaymentAmount
	}
	if u.gateway == nil {
		return entities.Order{}, ErrPaymentGatewayMissing
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	if len(providerPayload) == 0 {
		providerPayload = defaultPaymentPayload(order, amount)
	}

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		return entities.Order{}, err
	}
	if providerStatus != "approved" {
		log.Warn().Str("order_id", order.ID).Str("provider_payment_id", providerID).Str("status", providerStatus).Msg("advance payment not approved")
		return entities.Order{}, ErrPaymentNotApproved
	}
	log.Info().Str("order_id", order.ID).Str("provider_payment_id", providerID).Float64("amount", amount).Msg("advance payment approved")

	advance := order.Advance() + amount
	order.AdvancePayment = &advance

	return saveOrder(ctx, u.orders, u.cache, order)
}

func defaultPaymentPayload(order entities.Order, amount float64) json.RawMessage {
	payload := map[string]interface{}{
		"transaction_amount": amount,
		"description":        fmt.Sprintf("Acompte commande %s - %s", order.ClientName, order.Model),
		"external_reference": order.ID,
	}
	b, _ := json.Marshal(payload)
	return b
}
