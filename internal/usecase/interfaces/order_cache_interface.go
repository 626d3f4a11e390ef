package interfaces

import (
	"context"

	"luthierflow/internal/domain/entities"
)

// IOrderCache keeps a local snapshot of the full order list.
//
// It is written on every write attempt and read only when the remote list
// fails. Snapshot returns nil (and no error) when nothing was cached yet.
// The snapshot is never synchronized back to the remote store.
//
// Unsynced lists the ids of orders saved locally whose remote insert failed.
// Those orders must survive a snapshot refresh from the remote list.

type IOrderCache interface {
	Snapshot(ctx context.Context) ([]entities.ServiceOrder, error)
	Store(ctx context.Context, orders []entities.ServiceOrder) error
	Unsynced(ctx context.Context) ([]string, error)
	SetUnsynced(ctx context.Context, ids []string) error
}
