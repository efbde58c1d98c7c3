package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDeliveryDate = errors.New("invalid delivery date")
)

const deliveryDateLayout = "2006-01-02"

// OrderRequest is the full editable field set submitted by the order form.
// Prices bind as pointers so "missing" and "zero" stay distinguishable.
type OrderRequest struct {
	ClientName       string   `json:"client_name" binding:"required"`
	Model            string   `json:"model" binding:"required"`
	FabricColor      string   `json:"fabric_color" binding:"required"`
	Size             string   `json:"size" binding:"required"`
	FabricPrice      *float64 `json:"fabric_price" binding:"required"`
	SellingPrice     *float64 `json:"selling_price" binding:"required"`
	OrderCount       *int     `json:"order_count"`
	AdvancePayment   *float64 `json:"advance_payment"`
	DeliveryDate     *string  `json:"delivery_date"`
	DeliveryLocation string   `json:"delivery_location"`
	ModelImage       string   `json:"model_image"`
	Status           *int     `json:"status"`
}

func (r OrderRequest) ResolveFabricPrice() float64 {
	if r.FabricPrice == nil {
		return 0
	}
	return *r.FabricPrice
}

func (r OrderRequest) ResolveSellingPrice() float64 {
	if r.SellingPrice == nil {
		return 0
	}
	return *r.SellingPrice
}

// ResolveDeliveryDate parses the optional YYYY-MM-DD delivery date. A blank
// string counts as absent.
func (r OrderRequest) ResolveDeliveryDate() (*time.Time, error) {
	if r.DeliveryDate == nil || strings.TrimSpace(*r.DeliveryDate) == "" {
		return nil, nil
	}
	d, err := time.Parse(deliveryDateLayout, strings.TrimSpace(*r.DeliveryDate))
	if err != nil {
		return nil, ErrInvalidDeliveryDate
	}
	return &d, nil
}

// AdvancePaymentRequest records an advance payment against an order. The
// optional payment object is forwarded to the provider as-is; when omitted a
// minimal payload is built from the order.
type AdvancePaymentRequest struct {
	Amount  *float64               `json:"amount" binding:"required"`
	Payment map[string]interface{} `json:"payment,omitempty"`
}

func (r AdvancePaymentRequest) ResolveAmount() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}
