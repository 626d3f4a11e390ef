package interfaces

import (
	"context"

	"luthierflow/internal/domain/entities"
)

// ISettingsRepository persists the single global settings record.
//
// Get reports found=false when the record does not exist and an error when it
// cannot be read or decoded. Upsert overwrites the whole record.

type ISettingsRepository interface {
	Get(ctx context.Context) (settings entities.AppSettings, found bool, err error)
	Upsert(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error)
}
