package request

import (
	"errors"
	"testing"
	"time"
)

func TestOrderRequest_ResolvePrices(t *testing.T) {
	fabric := 40.0
	selling := 150.0
	r := OrderRequest{FabricPrice: &fabric, SellingPrice: &selling}

	if got := r.ResolveFabricPrice(); got != 40 {
		t.Fatalf("expected 40, got %v", got)
	}
	if got := r.ResolveSellingPrice(); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}

	r2 := OrderRequest{}
	if got := r2.ResolveFabricPrice(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := r2.ResolveSellingPrice(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestOrderRequest_ResolveDeliveryDate(t *testing.T) {
	raw := "2026-03-15"
	r := OrderRequest{DeliveryDate: &raw}
	d, err := r.ResolveDeliveryDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	if d == nil || !d.Equal(want) {
		t.Fatalf("expected %v, got %v", want, d)
	}

	blank := "   "
	r2 := OrderRequest{DeliveryDate: &blank}
	d, err = r2.ResolveDeliveryDate()
	if err != nil || d != nil {
		t.Fatalf("expected absent date, got %v err=%v", d, err)
	}

	r3 := OrderRequest{}
	d, err = r3.ResolveDeliveryDate()
	if err != nil || d != nil {
		t.Fatalf("expected absent date, got %v err=%v", d, err)
	}

	bad := "15/03/2026"
	r4 := OrderRequest{DeliveryDate: &bad}
	_, err = r4.ResolveDeliveryDate()
	if !errors.Is(err, ErrInvalidDeliveryDate) {
		t.Fatalf("expected ErrInvalidDeliveryDate, got %v", err)
	}
}

func TestAdvancePaymentRequest_ResolveAmount(t *testing.T) {
	amount := 75.5
	r := AdvancePaymentRequest{Amount: &amount}
	if got := r.ResolveAmount(); got != 75.5 {
		t.Fatalf("expected 75.5, got %v", got)
	}

	r2 := AdvancePaymentRequest{}
	if got := r2.ResolveAmount(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
