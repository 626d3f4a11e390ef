package usecase

import (
	"context"
	"errors"
	"testing"

	"luthierflow/internal/domain/entities"
	mock_interfaces "luthierflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// memCache backs the cache mock with a slice so tests can assert on the
// snapshot left behind by the use case. The unsynced id list is kept in
// memory as well.
func memCache(ctrl *gomock.Controller, initial []entities.ServiceOrder) (*mock_interfaces.MockIOrderCache, *[]entities.ServiceOrder) {
	state := initial
	var unsynced []string
	cache := mock_interfaces.NewMockIOrderCache(ctrl)
	cache.EXPECT().Unsynced(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]string, error) {
		return append([]string(nil), unsynced...), nil
	}).AnyTimes()
	cache.EXPECT().SetUnsynced(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, ids []string) error {
		unsynced = ids
		return nil
	}).AnyTimes()
	cache.EXPECT().Snapshot(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]entities.ServiceOrder, error) {
		if state == nil {
			return nil, nil
		}
		out := make([]entities.ServiceOrder, len(state))
		copy(out, state)
		return out, nil
	}).AnyTimes()
	cache.EXPECT().Store(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, orders []entities.ServiceOrder) error {
		state = orders
		return nil
	}).AnyTimes()
	return cache, &state
}

func sampleOrder(id, name string, status entities.OrderStatus) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:          id,
		OrderNumber: "1234",
		Customer:    entities.CustomerInfo{Name: name},
		Status:      status,
		EntryDate:   "2026-03-10",
	}
}

func TestOrderUseCase_ListOrders(t *testing.T) {
	t.Run("remote success refreshes the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, state := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)

		remote := []entities.ServiceOrder{sampleOrder("a", "Ana", entities.OrderStatusPendente)}
		repo.EXPECT().List(gomock.Any()).Return(remote, nil)

		got := uc.ListOrders(context.Background())
		if got.FromCache || len(got.Orders) != 1 || got.Orders[0].ID != "a" {
			t.Fatalf("unexpected listing: %+v", got)
		}
		if len(*state) != 1 || (*state)[0].ID != "a" {
			t.Fatalf("expected snapshot refreshed, got %+v", *state)
		}
	})

	t.Run("remote failure falls back to snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, _ := memCache(ctrl, []entities.ServiceOrder{sampleOrder("cached", "João", entities.OrderStatusPronto)})
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("network"))

		got := uc.ListOrders(context.Background())
		if !got.FromCache || len(got.Orders) != 1 || got.Orders[0].ID != "cached" {
			t.Fatalf("unexpected listing: %+v", got)
		}
	})

	t.Run("remote failure without snapshot is empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, _ := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("network"))

		got := uc.ListOrders(context.Background())
		if got.Orders == nil || len(got.Orders) != 0 {
			t.Fatalf("expected empty non-nil list, got %+v", got.Orders)
		}
	})

	t.Run("unreadable cache is empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache := mock_interfaces.NewMockIOrderCache(ctrl)
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("network"))
		cache.EXPECT().Snapshot(gomock.Any()).Return(nil, errors.New("corrupt"))

		got := uc.ListOrders(context.Background())
		if !got.FromCache || len(got.Orders) != 0 {
			t.Fatalf("unexpected listing: %+v", got)
		}
	})
}

func TestOrderUseCase_SearchAndBoard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	cache, _ := memCache(ctrl, nil)
	uc := NewOrderUseCase(repo, cache)

	remote := []entities.ServiceOrder{
		sampleOrder("a", "Ana Souza", entities.OrderStatusPendente),
		sampleOrder("b", "João", entities.OrderStatusEntregue),
	}
	repo.EXPECT().List(gomock.Any()).Return(remote, nil).Times(3)

	if got := uc.SearchOrders(context.Background(), "souza"); len(got.Orders) != 1 || got.Orders[0].ID != "a" {
		t.Fatalf("unexpected search result: %+v", got.Orders)
	}
	if got := uc.SearchOrders(context.Background(), "  "); len(got.Orders) != 2 {
		t.Fatalf("blank term must return everything, got %d", len(got.Orders))
	}

	board, fromCache := uc.Board(context.Background(), "joão")
	if fromCache || len(board) != 4 || len(board[entities.OrderStatusEntregue]) != 1 || len(board[entities.OrderStatusPendente]) != 0 {
		t.Fatalf("unexpected board: %+v", board)
	}
}

func TestOrderUseCase_GetOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		if _, err := uc.GetOrder(context.Background(), " "); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("remote error reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, errors.New("timeout"))
		if _, err := uc.GetOrder(context.Background(), "os-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, nil)
		if _, err := uc.GetOrder(context.Background(), "os-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(sampleOrder("os-1", "Ana", entities.OrderStatusPendente), nil)
		got, err := uc.GetOrder(context.Background(), " os-1 ")
		if err != nil || got.ID != "os-1" {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("customer name required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache := mock_interfaces.NewMockIOrderCache(ctrl)
		uc := NewOrderUseCase(repo, cache)

		_, err := uc.CreateOrder(context.Background(), entities.ServiceOrder{Customer: entities.CustomerInfo{Name: "  "}})
		if !errors.Is(err, entities.ErrCustomerNameRequired) {
			t.Fatalf("expected ErrCustomerNameRequired, got %v", err)
		}
	})

	t.Run("assigns identity and defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, state := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			return o, nil
		})

		got, err := uc.CreateOrder(context.Background(), entities.ServiceOrder{Customer: entities.CustomerInfo{Name: "Ana"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || len(got.OrderNumber) != 4 || got.EntryDate == "" || got.DeliveryDate == "" {
			t.Fatalf("expected generated identity, got %+v", got)
		}
		if got.Status != entities.OrderStatusPendente || got.Services == nil || got.Payments == nil {
			t.Fatalf("expected normalized order, got %+v", got)
		}
		if len(*state) != 1 || (*state)[0].ID != got.ID {
			t.Fatalf("expected order in snapshot, got %+v", *state)
		}
	})

	t.Run("remote failure keeps the order locally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, _ := memCache(ctrl, []entities.ServiceOrder{sampleOrder("older", "João", entities.OrderStatusPronto)})
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("offline"))
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("offline"))

		created, err := uc.CreateOrder(context.Background(), sampleOrder("new", "Ana", entities.OrderStatusPendente))
		if !errors.Is(err, ErrOrderNotSynced) {
			t.Fatalf("expected ErrOrderNotSynced, got %v", err)
		}
		if created.ID != "new" {
			t.Fatalf("expected the local order back, got %+v", created)
		}

		listing := uc.ListOrders(context.Background())
		if !listing.FromCache || len(listing.Orders) != 2 || listing.Orders[0].ID != "new" {
			t.Fatalf("expected new order first in cached listing, got %+v", listing.Orders)
		}
	})

	t.Run("unsynced order survives a successful remote list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, state := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)
		ctx := context.Background()

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("offline"))
		if _, err := uc.CreateOrder(ctx, sampleOrder("local-only", "Ana", entities.OrderStatusPendente)); !errors.Is(err, ErrOrderNotSynced) {
			t.Fatalf("expected ErrOrderNotSynced, got %v", err)
		}

		gomock.InOrder(
			repo.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{sampleOrder("remote", "João", entities.OrderStatusPronto)}, nil),
			repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("offline")),
		)

		if got := uc.ListOrders(ctx); got.FromCache || len(got.Orders) != 1 || got.Orders[0].ID != "remote" {
			t.Fatalf("expected the remote listing, got %+v", got)
		}
		if len(*state) != 2 || (*state)[0].ID != "local-only" || (*state)[1].ID != "remote" {
			t.Fatalf("expected unsynced order kept in front of the snapshot, got %+v", *state)
		}

		got := uc.ListOrders(ctx)
		if !got.FromCache || len(got.Orders) != 2 || got.Orders[0].ID != "local-only" {
			t.Fatalf("expected unsynced order in the fallback listing, got %+v", got.Orders)
		}
	})

	t.Run("order reaching the remote store is no longer unsynced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, state := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)
		ctx := context.Background()

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("offline"))
		_, _ = uc.CreateOrder(ctx, sampleOrder("late", "Ana", entities.OrderStatusPendente))

		gomock.InOrder(
			repo.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{sampleOrder("late", "Ana", entities.OrderStatusPendente)}, nil),
			repo.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{}, nil),
		)

		uc.ListOrders(ctx)
		if len(*state) != 1 {
			t.Fatalf("expected a single copy of the order, got %+v", *state)
		}
		uc.ListOrders(ctx)
		if len(*state) != 0 {
			t.Fatalf("synced order must follow the remote list, got %+v", *state)
		}
	})

	t.Run("unreadable unsynced list leaves the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache := mock_interfaces.NewMockIOrderCache(ctrl)
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{sampleOrder("remote", "João", entities.OrderStatusPronto)}, nil)
		cache.EXPECT().Unsynced(gomock.Any()).Return(nil, errors.New("locked"))
		cache.EXPECT().Store(gomock.Any(), gomock.Any()).Times(0)

		if got := uc.ListOrders(context.Background()); got.FromCache || len(got.Orders) != 1 {
			t.Fatalf("unexpected listing: %+v", got)
		}
	})
}

func TestOrderUseCase_UpdateAndDelete(t *testing.T) {
	t.Run("update surfaces remote error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, _ := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().GetByID(gomock.Any(), "a").Return(sampleOrder("a", "Ana", entities.OrderStatusPendente), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("throttled"))
		_, err := uc.UpdateOrder(context.Background(), sampleOrder("a", "Ana", entities.OrderStatusPendente))
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled error, got %v", err)
		}
	})

	t.Run("update of missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, _ := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().GetByID(gomock.Any(), "a").Return(entities.ServiceOrder{}, nil)
		if _, err := uc.UpdateOrder(context.Background(), sampleOrder("a", "Ana", entities.OrderStatusPendente)); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("update replaces the cached copy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, state := memCache(ctrl, []entities.ServiceOrder{sampleOrder("a", "Ana", entities.OrderStatusPendente)})
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().GetByID(gomock.Any(), "a").Return(sampleOrder("a", "Ana", entities.OrderStatusPendente), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			return o, nil
		})
		if _, err := uc.UpdateOrder(context.Background(), sampleOrder("a", "Ana Lima", entities.OrderStatusPendente)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if (*state)[0].Customer.Name != "Ana Lima" {
			t.Fatalf("expected cached copy updated, got %+v", (*state)[0])
		}
	})

	t.Run("update keeps stored identity, dates and status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		stored := sampleOrder("a", "Ana", entities.OrderStatusPronto)
		stored.DeliveryDate = "2026-03-17"
		repo, saved := storedOrderRepo(ctrl, stored)
		cache, _ := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)

		got, err := uc.UpdateOrder(context.Background(), entities.ServiceOrder{ID: "a", Customer: entities.CustomerInfo{Name: "Ana Lima"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.OrderNumber != "1234" || got.EntryDate != "2026-03-10" || got.DeliveryDate != "2026-03-17" || got.Status != entities.OrderStatusPronto {
			t.Fatalf("expected stored fields kept, got %+v", got)
		}
		if saved.Customer.Name != "Ana Lima" || saved.Status != entities.OrderStatusPronto {
			t.Fatalf("unexpected saved order: %+v", *saved)
		}
	})

	t.Run("update rejects more than one payment", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		o := sampleOrder("a", "Ana", entities.OrderStatusPendente)
		o.Payments = []entities.Payment{{ID: entities.DepositPaymentID, Amount: 50}, {ID: "second", Amount: 10}}
		if _, err := uc.UpdateOrder(context.Background(), o); !errors.Is(err, entities.ErrMultiplePayments) {
			t.Fatalf("expected ErrMultiplePayments, got %v", err)
		}
	})

	t.Run("unreadable snapshot is not wiped by an update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo, _ := storedOrderRepo(ctrl, sampleOrder("a", "Ana", entities.OrderStatusPendente))
		cache := mock_interfaces.NewMockIOrderCache(ctrl)
		uc := NewOrderUseCase(repo, cache)

		cache.EXPECT().Snapshot(gomock.Any()).Return(nil, errors.New("database is locked"))
		cache.EXPECT().Store(gomock.Any(), gomock.Any()).Times(0)

		if _, err := uc.SetDeposit(context.Background(), "a", 30); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete surfaces remote error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, _ := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().Delete(gomock.Any(), "a").Return(false, errors.New("denied"))
		if err := uc.DeleteOrder(context.Background(), "a"); err == nil || err.Error() != "denied" {
			t.Fatalf("expected denied error, got %v", err)
		}
	})

	t.Run("failed delete keeps the cached order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, state := memCache(ctrl, []entities.ServiceOrder{sampleOrder("a", "Ana", entities.OrderStatusPendente)})
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().Delete(gomock.Any(), "a").Return(false, errors.New("throttled"))
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("offline"))

		if err := uc.DeleteOrder(context.Background(), "a"); err == nil {
			t.Fatalf("expected error")
		}
		if len(*state) != 1 {
			t.Fatalf("expected order still cached, got %+v", *state)
		}
		if got := uc.ListOrders(context.Background()); len(got.Orders) != 1 || got.Orders[0].ID != "a" {
			t.Fatalf("expected order in fallback listing, got %+v", got.Orders)
		}
	})

	t.Run("delete of a local-only order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, state := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)
		ctx := context.Background()

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("offline"))
		_, _ = uc.CreateOrder(ctx, sampleOrder("local-only", "Ana", entities.OrderStatusPendente))

		repo.EXPECT().Delete(gomock.Any(), "local-only").Return(false, nil)
		if err := uc.DeleteOrder(ctx, "local-only"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(*state) != 0 {
			t.Fatalf("expected order dropped locally, got %+v", *state)
		}
	})

	t.Run("delete of missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, _ := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().Delete(gomock.Any(), "a").Return(false, nil)
		if err := uc.DeleteOrder(context.Background(), "a"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("delete removes from snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		cache, state := memCache(ctrl, []entities.ServiceOrder{
			sampleOrder("a", "Ana", entities.OrderStatusPendente),
			sampleOrder("b", "João", entities.OrderStatusPendente),
		})
		uc := NewOrderUseCase(repo, cache)

		repo.EXPECT().Delete(gomock.Any(), "a").Return(true, nil)
		if err := uc.DeleteOrder(context.Background(), "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(*state) != 1 || (*state)[0].ID != "b" {
			t.Fatalf("unexpected snapshot: %+v", *state)
		}
	})
}

// storedOrderRepo wires Get/Update of the repository mock to a single order.
func storedOrderRepo(ctrl *gomock.Controller, o entities.ServiceOrder) (*mock_interfaces.MockIOrderRepository, *entities.ServiceOrder) {
	stored := o
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, id string) (entities.ServiceOrder, error) {
		if id != stored.ID {
			return entities.ServiceOrder{}, nil
		}
		return stored, nil
	}).AnyTimes()
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
		stored = o
		return o, nil
	}).AnyTimes()
	return repo, &stored
}

func TestOrderUseCase_Lifecycle(t *testing.T) {
	t.Run("backward transition persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo, stored := storedOrderRepo(ctrl, sampleOrder("os-1", "Ana", entities.OrderStatusPronto))
		cache, _ := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)

		got, err := uc.TransitionStatus(context.Background(), "os-1", entities.OrderStatusPendente)
		if err != nil || got.Status != entities.OrderStatusPendente || stored.Status != entities.OrderStatusPendente {
			t.Fatalf("unexpected transition: %+v %v", got, err)
		}
	})

	t.Run("invalid status is rejected without saving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(sampleOrder("os-1", "Ana", entities.OrderStatusPronto), nil)
		if _, err := uc.TransitionStatus(context.Background(), "os-1", "CANCELADO"); !errors.Is(err, entities.ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("repeated deposits keep one payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo, stored := storedOrderRepo(ctrl, sampleOrder("os-1", "Ana", entities.OrderStatusPendente))
		cache, _ := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)

		for _, v := range []entities.Amount{10, 30, 20} {
			if _, err := uc.SetDeposit(context.Background(), "os-1", v); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if len(stored.Payments) != 1 || stored.Payments[0].Amount != 20 {
			t.Fatalf("expected single deposit of 20, got %+v", stored.Payments)
		}
	})

	t.Run("service lines and totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo, stored := storedOrderRepo(ctrl, sampleOrder("os-1", "Ana", entities.OrderStatusPendente))
		cache, _ := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)
		ctx := context.Background()

		if _, err := uc.AddServiceFromTemplate(ctx, "os-1", entities.DefaultSettings(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.SetDeposit(ctx, "os-1", 20); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		totals := stored.Totals()
		if totals.TotalPrice.String() != "50" || totals.Balance.String() != "30" {
			t.Fatalf("unexpected totals: %s %s", totals.TotalPrice, totals.Balance)
		}

		if _, err := uc.RemoveService(ctx, "os-1", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := stored.Totals().Balance.String(); got != "-20" {
			t.Fatalf("expected balance -20, got %s", got)
		}

		if _, err := uc.AddServiceFromTemplate(ctx, "os-1", entities.DefaultSettings(), 99); !errors.Is(err, ErrServiceTemplateNotFound) {
			t.Fatalf("expected ErrServiceTemplateNotFound, got %v", err)
		}
		if _, err := uc.RemoveService(ctx, "os-1", 3); !errors.Is(err, entities.ErrServiceIndexOutOfRange) {
			t.Fatalf("expected ErrServiceIndexOutOfRange, got %v", err)
		}
	})

	t.Run("note images", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo, stored := storedOrderRepo(ctrl, sampleOrder("os-1", "Ana", entities.OrderStatusPendente))
		cache, _ := memCache(ctrl, nil)
		uc := NewOrderUseCase(repo, cache)
		ctx := context.Background()

		if _, err := uc.AddNoteImage(ctx, "os-1", "data:image/jpeg;base64,AAA"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.RemoveNoteImage(ctx, "os-1", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stored.HandwrittenNoteImages) != 0 {
			t.Fatalf("expected no images, got %v", stored.HandwrittenNoteImages)
		}
	})

	t.Run("load error is not reported as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, errors.New("timeout"))
		_, err := uc.SetDeposit(context.Background(), "os-1", 10)
		if err == nil || errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected raw load error, got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo, _ := storedOrderRepo(ctrl, sampleOrder("os-1", "Ana", entities.OrderStatusPendente))
		uc := NewOrderUseCase(repo, nil)

		if _, err := uc.AddService(context.Background(), "other", "Regulagem", 180); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_ApplyExtraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo, stored := storedOrderRepo(ctrl, sampleOrder("os-1", "João", entities.OrderStatusPendente))
	cache, _ := memCache(ctrl, nil)
	uc := NewOrderUseCase(repo, cache)

	data := entities.ExtractedOrderData{
		CustomerName: "Ana",
		Services:     []entities.ExtractedService{{Description: "Nivelamento", Price: 350}},
	}
	if _, err := uc.ApplyExtraction(context.Background(), "os-1", data, "data:image/jpeg;base64,AAA"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Customer.Name != "João" || len(stored.Services) != 1 || len(stored.HandwrittenNoteImages) != 1 {
		t.Fatalf("unexpected merge: %+v", *stored)
	}
}
