package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"luthierflow/internal/domain/entities"
	"luthierflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrServiceTemplateNotFound = errors.New("predefined service not found")

	// ErrOrderNotSynced means the order was saved to the local cache only;
	// the remote insert failed and is not retried automatically.
	ErrOrderNotSynced = errors.New("order saved locally only, not synced")
)

// OrderListing is the result of listing orders. FromCache is set when the
// remote store failed and the local snapshot was served instead.
type OrderListing struct {
	Orders    []entities.ServiceOrder
	FromCache bool
}

// IOrderUseCase is the persistence gateway of service orders plus the
// lifecycle operations that load, mutate and save an order.
type IOrderUseCase interface {
	ListOrders(ctx context.Context) OrderListing
	SearchOrders(ctx context.Context, term string) OrderListing
	Board(ctx context.Context, term string) (map[entities.OrderStatus][]entities.ServiceOrder, bool)
	GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error)
	CreateOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	UpdateOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	DeleteOrder(ctx context.Context, id string) error

	TransitionStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error)
	SetDeposit(ctx context.Context, id string, amount entities.Amount) (entities.ServiceOrder, error)
	AddService(ctx context.Context, id string, description string, price entities.Amount) (entities.ServiceOrder, error)
	AddServiceFromTemplate(ctx context.Context, id string, settings entities.AppSettings, templateIndex int) (entities.ServiceOrder, error)
	UpdateService(ctx context.Context, id string, index int, description *string, price *entities.Amount) (entities.ServiceOrder, error)
	RemoveService(ctx context.Context, id string, index int) (entities.ServiceOrder, error)
	AddNoteImage(ctx context.Context, id string, dataURI string) (entities.ServiceOrder, error)
	RemoveNoteImage(ctx context.Context, id string, index int) (entities.ServiceOrder, error)
	ApplyExtraction(ctx context.Context, id string, data entities.ExtractedOrderData, dataURI string) (entities.ServiceOrder, error)
}

type OrderUseCase struct {
	repo  interfaces.IOrderRepository
	cache interfaces.IOrderCache
	now   func() time.Time

	// cacheMu serializes read-modify-write cycles on the local snapshot.
	cacheMu sync.Mutex
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, cache interfaces.IOrderCache) *OrderUseCase {
	return &OrderUseCase{repo: repo, cache: cache, now: time.Now}
}

// ListOrders returns all orders, newest entry first. When the remote store
// fails, the last local snapshot is returned (empty when none exists); this
// never fails.
func (u *OrderUseCase) ListOrders(ctx context.Context) OrderListing {
	orders, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[order][usecase] remote list failed; falling back to local cache err=%v", err)
		return OrderListing{Orders: u.cachedOrders(ctx), FromCache: true}
	}

	u.refreshCache(ctx, orders)
	return OrderListing{Orders: orders}
}

// refreshCache replaces the snapshot with the remote list. Orders saved
// locally whose remote insert failed stay in front of it until the remote
// list contains them.
func (u *OrderUseCase) refreshCache(ctx context.Context, remote []entities.ServiceOrder) {
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()

	pending, err := u.cache.Unsynced(ctx)
	if err != nil {
		log.Printf("[order][usecase] unsynced read failed; snapshot left untouched err=%v", err)
		return
	}

	snapshot := remote
	if len(pending) > 0 {
		cached, err := u.cache.Snapshot(ctx)
		if err != nil {
			log.Printf("[order][usecase] cache read failed; snapshot left untouched err=%v", err)
			return
		}

		inRemote := make(map[string]bool, len(remote))
		for _, o := range remote {
			inRemote[o.ID] = true
		}
		isPending := make(map[string]bool, len(pending))
		for _, id := range pending {
			isPending[id] = true
		}

		local := make([]entities.ServiceOrder, 0, len(pending))
		stillPending := make([]string, 0, len(pending))
		for _, o := range cached {
			if isPending[o.ID] && !inRemote[o.ID] {
				local = append(local, o)
				stillPending = append(stillPending, o.ID)
			}
		}

		snapshot = make([]entities.ServiceOrder, 0, len(local)+len(remote))
		snapshot = append(snapshot, local...)
		snapshot = append(snapshot, remote...)

		if len(stillPending) != len(pending) {
			if err := u.cache.SetUnsynced(ctx, stillPending); err != nil {
				log.Printf("[order][usecase] unsynced write failed err=%v", err)
			}
		}
		log.Printf("[order][usecase] cache refresh kept unsynced orders count=%d", len(local))
	}

	if err := u.cache.Store(ctx, snapshot); err != nil {
		log.Printf("[order][usecase] cache refresh failed err=%v", err)
	}
}

func (u *OrderUseCase) SearchOrders(ctx context.Context, term string) OrderListing {
	listing := u.ListOrders(ctx)
	if strings.TrimSpace(term) == "" {
		return listing
	}
	filtered := make([]entities.ServiceOrder, 0, len(listing.Orders))
	for _, o := range listing.Orders {
		if o.MatchesSearch(term) {
			filtered = append(filtered, o)
		}
	}
	listing.Orders = filtered
	return listing
}

// Board groups the search result per status for the dashboard. The boolean
// reports whether the data came from the local cache.
func (u *OrderUseCase) Board(ctx context.Context, term string) (map[entities.OrderStatus][]entities.ServiceOrder, bool) {
	listing := u.SearchOrders(ctx, term)
	return entities.GroupByStatus(listing.Orders), listing.FromCache
}

// GetOrder is a point lookup. Remote errors are logged and reported as
// ErrOrderNotFound.
func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[order][usecase] get failed order_id=%s err=%v", id, err)
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// CreateOrder writes the order to the local cache first, then inserts it
// remotely. A remote failure returns the order together with
// ErrOrderNotSynced: the order exists locally even though the call failed.
func (u *OrderUseCase) CreateOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o = u.withCreationDefaults(o)
	if err := o.ValidateForSave(); err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[order][usecase] create start order_id=%s order_number=%s", o.ID, o.OrderNumber)

	u.prependToCache(ctx, o)

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] remote create failed; kept locally order_id=%s err=%v", o.ID, err)
		u.markUnsynced(ctx, o.ID)
		return o, fmt.Errorf("%w: %v", ErrOrderNotSynced, err)
	}
	log.Printf("[order][usecase] create success order_id=%s", created.ID)
	return created, nil
}

// UpdateOrder replaces a stored order. The order number, dates, status and
// note images left empty keep their stored values. Failures are returned to
// the caller.
func (u *OrderUseCase) UpdateOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o.ID = strings.TrimSpace(o.ID)
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}
	if err := o.ValidateForSave(); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.mutate(ctx, o.ID, func(stored *entities.ServiceOrder) error {
		next := o
		next.KeepStoredFields(*stored)
		next.Normalize()
		*stored = next
		return nil
	})
}

// DeleteOrder permanently removes an order. The local snapshot only changes
// once the remote delete succeeded, except for an order that never reached
// the remote store, which is dropped locally.
func (u *OrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[order][usecase] remote delete failed order_id=%s err=%v", id, err)
		return err
	}

	wasUnsynced := u.dropLocal(ctx, id)
	if !deleted && !wasUnsynced {
		return ErrOrderNotFound
	}
	log.Printf("[order][usecase] delete success order_id=%s local_only=%t", id, !deleted)
	return nil
}

func (u *OrderUseCase) TransitionStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		from := o.Status
		if err := o.TransitionStatus(status); err != nil {
			return err
		}
		log.Printf("[order][usecase] status change order_id=%s from=%s to=%s", o.ID, from, o.Status)
		return nil
	})
}

func (u *OrderUseCase) SetDeposit(ctx context.Context, id string, amount entities.Amount) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		o.SetDeposit(amount, u.now())
		return nil
	})
}

func (u *OrderUseCase) AddService(ctx context.Context, id string, description string, price entities.Amount) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		o.AddService(description, price)
		return nil
	})
}

// AddServiceFromTemplate appends a copy of one of the predefined services of
// the given settings.
func (u *OrderUseCase) AddServiceFromTemplate(ctx context.Context, id string, settings entities.AppSettings, templateIndex int) (entities.ServiceOrder, error) {
	tpl, ok := settings.PredefinedService(templateIndex)
	if !ok {
		return entities.ServiceOrder{}, ErrServiceTemplateNotFound
	}
	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		o.AddServiceFromTemplate(tpl)
		return nil
	})
}

func (u *OrderUseCase) UpdateService(ctx context.Context, id string, index int, description *string, price *entities.Amount) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		_, err := o.UpdateService(index, description, price)
		return err
	})
}

func (u *OrderUseCase) RemoveService(ctx context.Context, id string, index int) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		return o.RemoveService(index)
	})
}

func (u *OrderUseCase) AddNoteImage(ctx context.Context, id string, dataURI string) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		return o.AddNoteImage(dataURI)
	})
}

func (u *OrderUseCase) RemoveNoteImage(ctx context.Context, id string, index int) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		return o.RemoveNoteImage(index)
	})
}

// ApplyExtraction merges extracted hints into a stored order and keeps the
// source photo among its note images.
func (u *OrderUseCase) ApplyExtraction(ctx context.Context, id string, data entities.ExtractedOrderData, dataURI string) (entities.ServiceOrder, error) {
	return u.mutate(ctx, id, func(o *entities.ServiceOrder) error {
		*o = entities.MergeExtraction(*o, data)
		if strings.TrimSpace(dataURI) != "" {
			return o.AddNoteImage(dataURI)
		}
		return nil
	})
}

// mutate loads an order, applies fn and saves it. Load errors are returned
// as-is so a failing store is not mistaken for a missing order.
func (u *OrderUseCase) mutate(ctx context.Context, id string, fn func(o *entities.ServiceOrder) error) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[order][usecase] load failed order_id=%s err=%v", id, err)
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	if err := fn(&o); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.save(ctx, o)
}

func (u *OrderUseCase) save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	u.mirror(ctx, func(orders []entities.ServiceOrder) []entities.ServiceOrder {
		for i := range orders {
			if orders[i].ID == o.ID {
				orders[i] = o
				break
			}
		}
		return orders
	})

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] remote update failed order_id=%s err=%v", o.ID, err)
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

// mirror applies fn to the local snapshot. Cache failures are logged only;
// an unreadable snapshot is left as it is.
func (u *OrderUseCase) mirror(ctx context.Context, fn func([]entities.ServiceOrder) []entities.ServiceOrder) {
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()
	u.mirrorLocked(ctx, fn)
}

func (u *OrderUseCase) mirrorLocked(ctx context.Context, fn func([]entities.ServiceOrder) []entities.ServiceOrder) {
	orders, err := u.cache.Snapshot(ctx)
	if err != nil {
		log.Printf("[order][usecase] cache read failed; snapshot left untouched err=%v", err)
		return
	}
	if err := u.cache.Store(ctx, fn(orders)); err != nil {
		log.Printf("[order][usecase] cache write failed err=%v", err)
	}
}

// prependToCache puts a new order in front of the snapshot. When the
// snapshot cannot be read, a new one holding just this order is started so
// a locally saved order is never lost.
func (u *OrderUseCase) prependToCache(ctx context.Context, o entities.ServiceOrder) {
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()

	orders, err := u.cache.Snapshot(ctx)
	if err != nil {
		log.Printf("[order][usecase] cache read failed; starting a new snapshot err=%v", err)
		orders = nil
	}
	if err := u.cache.Store(ctx, append([]entities.ServiceOrder{o}, orders...)); err != nil {
		log.Printf("[order][usecase] cache write failed err=%v", err)
	}
}

func (u *OrderUseCase) markUnsynced(ctx context.Context, id string) {
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()

	ids, err := u.cache.Unsynced(ctx)
	if err != nil {
		log.Printf("[order][usecase] unsynced read failed; starting a new list err=%v", err)
		ids = nil
	}
	for _, existing := range ids {
		if existing == id {
			return
		}
	}
	if err := u.cache.SetUnsynced(ctx, append(ids, id)); err != nil {
		log.Printf("[order][usecase] unsynced write failed order_id=%s err=%v", id, err)
	}
}

// dropLocal removes an order from the snapshot and from the unsynced list.
// It reports whether the order was waiting to be synced.
func (u *OrderUseCase) dropLocal(ctx context.Context, id string) bool {
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()

	u.mirrorLocked(ctx, func(orders []entities.ServiceOrder) []entities.ServiceOrder {
		kept := orders[:0]
		for _, o := range orders {
			if o.ID != id {
				kept = append(kept, o)
			}
		}
		return kept
	})

	ids, err := u.cache.Unsynced(ctx)
	if err != nil {
		log.Printf("[order][usecase] unsynced read failed order_id=%s err=%v", id, err)
		return false
	}
	kept := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(ids) {
		return false
	}
	if err := u.cache.SetUnsynced(ctx, kept); err != nil {
		log.Printf("[order][usecase] unsynced write failed order_id=%s err=%v", id, err)
	}
	return true
}

func (u *OrderUseCase) cachedOrders(ctx context.Context) []entities.ServiceOrder {
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()

	orders, err := u.cache.Snapshot(ctx)
	if err != nil {
		log.Printf("[order][usecase] cache read failed err=%v", err)
		return []entities.ServiceOrder{}
	}
	if orders == nil {
		return []entities.ServiceOrder{}
	}
	return orders
}

func (u *OrderUseCase) withCreationDefaults(o entities.ServiceOrder) entities.ServiceOrder {
	now := u.now()
	draft := entities.NewServiceOrder(now)

	if strings.TrimSpace(o.ID) == "" {
		o.ID = uuid.NewString()
	}
	if strings.TrimSpace(o.OrderNumber) == "" {
		o.OrderNumber = draft.OrderNumber
	}
	if o.EntryDate == "" {
		o.EntryDate = draft.EntryDate
	}
	if o.DeliveryDate == "" {
		o.DeliveryDate = draft.DeliveryDate
	}
	if strings.TrimSpace(o.Instrument.Type) == "" {
		o.Instrument.Type = draft.Instrument.Type
	}
	o.Normalize()
	return o
}
