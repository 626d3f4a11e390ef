package usecase

import (
	"context"
	"log"
	"strings"

	"luthierflow/internal/domain/entities"
	"luthierflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type ISettingsUseCase interface {
	GetSettings(ctx context.Context) entities.AppSettings
	SaveSettings(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// GetSettings never fails: an absent, malformed or unreachable record yields
// the built-in defaults.
func (u *SettingsUseCase) GetSettings(ctx context.Context) entities.AppSettings {
	s, found, err := u.repo.Get(ctx)
	if err != nil {
		log.Printf("[settings][usecase] load failed; using defaults err=%v", err)
		return entities.DefaultSettings()
	}
	if !found || s.IsZero() {
		return entities.DefaultSettings()
	}
	s.Normalize()
	return s
}

// SaveSettings overwrites the global record. Luthiers without an id get one.
func (u *SettingsUseCase) SaveSettings(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error) {
	s.Normalize()
	for i := range s.Luthiers {
		s.Luthiers[i].ID = strings.TrimSpace(s.Luthiers[i].ID)
		if s.Luthiers[i].ID == "" {
			s.Luthiers[i].ID = uuid.NewString()[:8]
		}
	}

	saved, err := u.repo.Upsert(ctx, s)
	if err != nil {
		log.Printf("[settings][usecase] save failed err=%v", err)
		return entities.AppSettings{}, err
	}
	log.Printf("[settings][usecase] save success types=%d brands=%d services=%d luthiers=%d",
		len(saved.InstrumentTypes), len(saved.Brands), len(saved.PredefinedServices), len(saved.Luthiers))
	return saved, nil
}
