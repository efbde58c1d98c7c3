package reporting

import (
	"reflect"
	"testing"
	"time"

	"atelier_couture/internal/domain/entities"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleOrders() []entities.Order {
	return []entities.Order{
		{ID: "1", ClientName: "Alice", Model: "Dress", DeliveryDate: day(2024, time.March, 15)},
		{ID: "2", ClientName: "Bob", Model: "Shirt", DeliveryDate: day(2024, time.March, 16)},
		{ID: "3", ClientName: "Caroline", Model: "Alinéa skirt"},
	}
}

func ids(orders []entities.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestFilterText(t *testing.T) {
	orders := sampleOrders()

	t.Run("empty search keeps everything", func(t *testing.T) {
		if got := ids(Filter(orders, "", nil)); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
			t.Fatalf("unexpected result: %v", got)
		}
	})

	t.Run("case-insensitive substring on client name", func(t *testing.T) {
		if got := ids(Filter(orders, "ali", nil)); !reflect.DeepEqual(got, []string{"1", "3"}) {
			t.Fatalf("unexpected result: %v", got)
		}
	})

	t.Run("substring on model", func(t *testing.T) {
		if got := ids(Filter(orders, "SHIRT", nil)); !reflect.DeepEqual(got, []string{"2"}) {
			t.Fatalf("unexpected result: %v", got)
		}
	})

	t.Run("no match yields empty, not nil error", func(t *testing.T) {
		if got := Filter(orders, "zzz", nil); len(got) != 0 {
			t.Fatalf("expected empty result, got %v", ids(got))
		}
	})

	t.Run("whitespace search matches literally", func(t *testing.T) {
		// Only "Alinéa skirt" contains a space; a blank search is a real
		// filter, not a no-op.
		if got := ids(Filter(orders, " ", nil)); !reflect.DeepEqual(got, []string{"3"}) {
			t.Fatalf("unexpected result: %v", got)
		}
	})
}

func TestFilterDeliveryDate(t *testing.T) {
	orders := sampleOrders()

	t.Run("calendar-day match ignores time of day", func(t *testing.T) {
		at := time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)
		if got := ids(Filter(orders, "", &at)); !reflect.DeepEqual(got, []string{"1"}) {
			t.Fatalf("unexpected result: %v", got)
		}
	})

	t.Run("next day excludes", func(t *testing.T) {
		if got := Filter(orders, "", day(2024, time.March, 17)); len(got) != 0 {
			t.Fatalf("expected empty result, got %v", ids(got))
		}
	})

	t.Run("orders without delivery date are excluded while active", func(t *testing.T) {
		for _, o := range Filter(orders, "", day(2024, time.March, 15)) {
			if o.DeliveryDate == nil {
				t.Fatalf("order %s has no delivery date but matched", o.ID)
			}
		}
	})
}

func TestFilterComposition(t *testing.T) {
	orders := sampleOrders()
	date := day(2024, time.March, 15)

	t.Run("both filters compose with AND", func(t *testing.T) {
		if got := ids(Filter(orders, "ali", date)); !reflect.DeepEqual(got, []string{"1"}) {
			t.Fatalf("unexpected result: %v", got)
		}
		if got := Filter(orders, "bob", date); len(got) != 0 {
			t.Fatalf("expected empty result, got %v", ids(got))
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Filter(orders, "ali", date)
		twice := Filter(once, "ali", date)
		if !reflect.DeepEqual(ids(once), ids(twice)) {
			t.Fatalf("expected %v, got %v", ids(once), ids(twice))
		}
	})

	t.Run("order independent", func(t *testing.T) {
		textThenDate := Filter(Filter(orders, "ali", nil), "", date)
		dateThenText := Filter(Filter(orders, "", date), "ali", nil)
		if !reflect.DeepEqual(ids(textThenDate), ids(dateThenText)) {
			t.Fatalf("expected %v, got %v", ids(textThenDate), ids(dateThenText))
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := ids(orders)
		Filter(orders, "ali", date)
		if !reflect.DeepEqual(before, ids(orders)) {
			t.Fatal("input slice changed")
		}
	})
}
