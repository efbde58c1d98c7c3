package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier_couture/internal/domain/entities"
	mock_interfaces "atelier_couture/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validInput() OrderInput {
	return OrderInput{
		ClientName:   "Alice",
		Model:        "Dress",
		FabricColor:  "Blue",
		Size:         "M",
		FabricPrice:  60,
		SellingPrice: 100,
	}
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("validation failures", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)

		cases := []struct {
			name   string
			mutate func(*OrderInput)
			want   error
		}{
			{name: "missing client name", mutate: func(in *OrderInput) { in.ClientName = "   " }, want: ErrMissingClientName},
			{name: "missing model", mutate: func(in *OrderInput) { in.Model = "" }, want: ErrMissingModel},
			{name: "missing fabric color", mutate: func(in *OrderInput) { in.FabricColor = "" }, want: ErrMissingFabricColor},
			{name: "missing size", mutate: func(in *OrderInput) { in.Size = "" }, want: ErrMissingSize},
			{name: "negative fabric price", mutate: func(in *OrderInput) { in.FabricPrice = -1 }, want: ErrInvalidFabricPrice},
			{name: "negative selling price", mutate: func(in *OrderInput) { in.SellingPrice = -1 }, want: ErrInvalidSellingPrice},
			{name: "zero order count", mutate: func(in *OrderInput) { v := 0; in.OrderCount = &v }, want: ErrInvalidOrderCount},
			{name: "negative advance", mutate: func(in *OrderInput) { v := -5.0; in.AdvancePayment = &v }, want: ErrInvalidAdvancePayment},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := validInput()
				tc.mutate(&in)
				if _, err := uc.Create(context.Background(), in); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), validInput()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success derives profit and assigns id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache := mock_interfaces.NewMockIStatsCache(ctrl)
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" {
					t.Fatal("expected generated id")
				}
				if o.Profit != 40 {
					t.Fatalf("expected profit 40, got %v", o.Profit)
				}
				if o.CreatedAt.IsZero() || !o.UpdatedAt.Equal(o.CreatedAt) {
					t.Fatalf("expected equal timestamps, got %v / %v", o.CreatedAt, o.UpdatedAt)
				}
				return o, nil
			},
		)
		cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)

		res, err := uc.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ClientName != "Alice" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("loss is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		in := validInput()
		in.FabricPrice = 70
		in.SellingPrice = 50

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Profit != -20 {
					t.Fatalf("expected profit -20, got %v", o.Profit)
				}
				return o, nil
			},
		)

		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		if _, err := uc.Update(context.Background(), "  ", validInput()); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Order{}, nil)

		if _, err := uc.Update(context.Background(), "id-1", validInput()); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success preserves created_at and refreshes updated_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache := mock_interfaces.NewMockIStatsCache(ctrl)
		uc := NewOrderUseCase(repo, cache)

		createdAt := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Order{ID: "id-1", CreatedAt: createdAt}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if !o.CreatedAt.Equal(createdAt) {
					t.Fatalf("created_at must be immutable, got %v", o.CreatedAt)
				}
				if !o.UpdatedAt.After(createdAt) {
					t.Fatalf("expected refreshed updated_at, got %v", o.UpdatedAt)
				}
				return o, nil
			},
		)
		cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)

		if _, err := uc.Update(context.Background(), " id-1 ", validInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "id-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "id-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success invalidates stats cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache := mock_interfaces.NewMockIStatsCache(ctrl)
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().Delete(gomock.Any(), "id-1").Return(true, nil)
		cache.EXPECT().InvalidateAll(gomock.Any()).Return(nil)

		if err := uc.Delete(context.Background(), "id-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_List(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.List(context.Background(), "", nil); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("applies filters over the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Order{
			{ID: "1", ClientName: "Alice", Model: "Dress"},
			{ID: "2", ClientName: "Bob", Model: "Shirt"},
		}, nil)

		res, err := uc.List(context.Background(), "ali", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Order{}, nil)

		if _, err := uc.GetByID(context.Background(), "id-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Order{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "id-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
