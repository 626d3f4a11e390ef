package request

import (
	"strings"

	"luthierflow/internal/domain/entities"
)

type PredefinedServiceRequest struct {
	Description string          `json:"description"`
	Price       entities.Amount `json:"price"`
}

type LuthierRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SettingsRequest replaces the whole settings record.
type SettingsRequest struct {
	InstrumentTypes    []string                   `json:"instrumentTypes"`
	Brands             []string                   `json:"brands"`
	PredefinedServices []PredefinedServiceRequest `json:"predefinedServices"`
	Luthiers           []LuthierRequest           `json:"luthiers"`
}

func (r SettingsRequest) ToEntity() entities.AppSettings {
	s := entities.AppSettings{
		InstrumentTypes:    compactStrings(r.InstrumentTypes),
		Brands:             compactStrings(r.Brands),
		PredefinedServices: make([]entities.PredefinedService, 0, len(r.PredefinedServices)),
		Luthiers:           make([]entities.Luthier, 0, len(r.Luthiers)),
	}
	for _, p := range r.PredefinedServices {
		if strings.TrimSpace(p.Description) == "" {
			continue
		}
		s.PredefinedServices = append(s.PredefinedServices, entities.PredefinedService{
			Description: strings.TrimSpace(p.Description),
			Price:       p.Price,
		})
	}
	for _, l := range r.Luthiers {
		if strings.TrimSpace(l.Name) == "" {
			continue
		}
		s.Luthiers = append(s.Luthiers, entities.Luthier{
			ID:    strings.TrimSpace(l.ID),
			Name:  strings.TrimSpace(l.Name),
			Color: strings.TrimSpace(l.Color),
		})
	}
	return s
}

// compactStrings trims entries and drops blanks and duplicates, keeping order.
func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
