package interfaces

import (
	"context"

	"luthierflow/internal/domain/entities"
)

// IOrderRepository abstracts the remote store of service orders.
//
// Not-found is reported as a zero-value order (empty ID) with a nil error,
// so callers can tell it apart from a failed request.

type IOrderRepository interface {
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) (bool, error)
}
