package response

import (
	"time"

	"atelier_couture/internal/domain/entities"
)

type OrderResponse struct {
	ID           string  `json:"id"`
	ClientName   string  `json:"client_name"`
	Model        string  `json:"model"`
	FabricColor  string  `json:"fabric_color"`
	Size         string  `json:"size"`
	FabricPrice  float64 `json:"fabric_price"`
	SellingPrice float64 `json:"selling_price"`
	Profit       float64 `json:"profit"`

	OrderCount       int     `json:"order_count"`
	AdvancePayment   float64 `json:"advance_payment"`
	DeliveryDate     *string `json:"delivery_date,omitempty"`
	DeliveryLocation string  `json:"delivery_location,omitempty"`
	ModelImage       string  `json:"model_image,omitempty"`

	Status StatusResponse `json:"status"`

	TotalToPay  float64 `json:"total_to_pay"`
	Remaining   float64 `json:"remaining"`
	TotalProfit float64 `json:"total_profit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StatusResponse struct {
	Value int    `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

func FromStatus(s entities.StatusDescriptor) StatusResponse {
	return StatusResponse{Value: s.Value, Label: s.Label, Color: s.Color}
}

func FromStatuses(statuses []entities.StatusDescriptor) []StatusResponse {
	out := make([]StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, FromStatus(s))
	}
	return out
}

func FromOrder(o entities.Order) OrderResponse {
	tot := o.Totals()
	resp := OrderResponse{
		ID:               o.ID,
		ClientName:       o.ClientName,
		Model:            o.Model,
		FabricColor:      o.FabricColor,
		Size:             o.Size,
		FabricPrice:      o.FabricPrice,
		SellingPrice:     o.SellingPrice,
		Profit:           o.Profit,
		OrderCount:       o.Quantity(),
		AdvancePayment:   o.Advance(),
		DeliveryLocation: o.DeliveryLocation,
		ModelImage:       o.ModelImage,
		Status:           FromStatus(entities.StatusByOptionalValue(o.Status)),
		TotalToPay:       tot.TotalToPay,
		Remaining:        tot.Remaining,
		TotalProfit:      tot.TotalProfit,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	if o.DeliveryDate != nil {
		d := o.DeliveryDate.Format("2006-01-02")
		resp.DeliveryDate = &d
	}
	return resp
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
