package entities

import "time"

// Order is a customer garment order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - FabricPrice is the per-unit cost basis, SellingPrice the per-unit sale
//     price. Profit is stored redundantly but must always equal
//     SellingPrice - FabricPrice for any record this service writes.
//
// Optional fields are pointers; the derived accessors below apply the
// defaults (quantity 1, advance 0) in one place so nothing downstream
// repeats the fallback.

type Order struct {
	ID           string  `json:"id"`
	ClientName   string  `json:"client_name"`
	Model        string  `json:"model"`
	FabricColor  string  `json:"fabric_color"`
	Size         string  `json:"size"`
	FabricPrice  float64 `json:"fabric_price"`
	SellingPrice float64 `json:"selling_price"`
	Profit       float64 `json:"profit"`

	OrderCount       *int       `json:"order_count,omitempty"`
	AdvancePayment   *float64   `json:"advance_payment,omitempty"`
	DeliveryDate     *time.Time `json:"delivery_date,omitempty"`
	DeliveryLocation string     `json:"delivery_location,omitempty"`
	ModelImage       string     `json:"model_image,omitempty"`
	Status           *int       `json:"status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderTotals holds the amounts the detail view derives from one order.
// Remaining may be negative when the client overpaid; that is a valid,
// displayable state, not an error.
type OrderTotals struct {
	TotalToPay  float64
	Remaining   float64
	TotalProfit float64
}

// DeriveProfit returns the per-unit profit. It accepts any finite inputs,
// including combinations that yield a loss.
func DeriveProfit(fabricPrice, sellingPrice float64) float64 {
	return sellingPrice - fabricPrice
}

// Quantity returns the order quantity, defaulting to 1 when unset.
func (o Order) Quantity() int {
	if o.OrderCount == nil || *o.OrderCount < 1 {
		return 1
	}
	return *o.OrderCount
}

// Advance returns the advance payment already received, defaulting to 0.
func (o Order) Advance() float64 {
	if o.AdvancePayment == nil {
		return 0
	}
	return *o.AdvancePayment
}

// StatusValue returns the stored status value, defaulting to Draft when the
// field was never set.
func (o Order) StatusValue() int {
	if o.Status == nil {
		return StatusDraft
	}
	return *o.Status
}

// SuggestedSizes lists the common garment sizes offered by the form.
// Any custom string is still a valid size.
func SuggestedSizes() []string {
	return []string{"S", "M", "L", "XL"}
}

// Totals computes the quantity-weighted amounts for the order.
func (o Order) Totals() OrderTotals {
	qty := float64(o.Quantity())
	totalToPay := o.SellingPrice * qty
	return OrderTotals{
		TotalToPay:  totalToPay,
		Remaining:   totalToPay - o.Advance(),
		TotalProfit: o.Profit * qty,
	}
}
