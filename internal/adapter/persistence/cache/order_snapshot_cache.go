package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"luthierflow/internal/domain/entities"
	"luthierflow/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const (
	ordersSnapshotKey = "luthierflow_cloud_orders"
	unsyncedOrdersKey = "luthierflow_unsynced_orders"
)

// orderSnapshot is a key-value row holding the whole order list as JSON.
type orderSnapshot struct {
	Key       string `gorm:"column:snapshot_key;primaryKey;size:64"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (orderSnapshot) TableName() string { return "order_snapshots" }

// OrderSnapshotCache is the local fallback cache of the order list, stored in
// SQLite through GORM.
type OrderSnapshotCache struct {
	db *gorm.DB
}

var _ interfaces.IOrderCache = (*OrderSnapshotCache)(nil)

func NewOrderSnapshotCache(db *gorm.DB) (*OrderSnapshotCache, error) {
	if err := db.AutoMigrate(&orderSnapshot{}); err != nil {
		return nil, err
	}
	return &OrderSnapshotCache{db: db}, nil
}

func (c *OrderSnapshotCache) Snapshot(ctx context.Context) ([]entities.ServiceOrder, error) {
	var row orderSnapshot
	err := c.db.WithContext(ctx).Where("snapshot_key = ?", ordersSnapshotKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []entities.ServiceOrder
	if err := json.Unmarshal([]byte(row.Payload), &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Normalize()
	}
	return orders, nil
}

func (c *OrderSnapshotCache) Store(ctx context.Context, orders []entities.ServiceOrder) error {
	if orders == nil {
		orders = []entities.ServiceOrder{}
	}
	return c.put(ctx, ordersSnapshotKey, orders)
}

// Unsynced returns the ids of orders whose remote insert failed.
func (c *OrderSnapshotCache) Unsynced(ctx context.Context) ([]string, error) {
	var row orderSnapshot
	err := c.db.WithContext(ctx).Where("snapshot_key = ?", unsyncedOrdersKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(row.Payload), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *OrderSnapshotCache) SetUnsynced(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return c.put(ctx, unsyncedOrdersKey, ids)
}

func (c *OrderSnapshotCache) put(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.db.WithContext(ctx).Save(&orderSnapshot{
		Key:       key,
		Payload:   string(b),
		UpdatedAt: time.Now().UTC(),
	}).Error
}
