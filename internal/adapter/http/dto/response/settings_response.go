package response

import "luthierflow/internal/domain/entities"

type PredefinedServiceResponse struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type SettingsResponse struct {
	InstrumentTypes    []string                    `json:"instrumentTypes"`
	Brands             []string                    `json:"brands"`
	PredefinedServices []PredefinedServiceResponse `json:"predefinedServices"`
	Luthiers           []LuthierResponse           `json:"luthiers"`
}

func FromSettings(s entities.AppSettings) SettingsResponse {
	s.Normalize()
	res := SettingsResponse{
		InstrumentTypes:    s.InstrumentTypes,
		Brands:             s.Brands,
		PredefinedServices: make([]PredefinedServiceResponse, 0, len(s.PredefinedServices)),
		Luthiers:           make([]LuthierResponse, 0, len(s.Luthiers)),
	}
	for _, p := range s.PredefinedServices {
		res.PredefinedServices = append(res.PredefinedServices, PredefinedServiceResponse{Description: p.Description, Price: float64(p.Price)})
	}
	for _, l := range s.Luthiers {
		res.Luthiers = append(res.Luthiers, LuthierResponse{ID: l.ID, Name: l.Name, Color: l.Color})
	}
	return res
}
