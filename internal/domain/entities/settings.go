package entities

import "strings"

// SettingsKey is the id of the single global settings record.
const SettingsKey = "global"

type PredefinedService struct {
	Description string `json:"description"`
	Price       Amount `json:"price"`
}

// Luthier is a staff technician. Color is only used to tag orders visually.
type Luthier struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AppSettings holds the shop-wide vocabularies.
//
// Storage model (DynamoDB):
//   - PK: id = SettingsKey
//   - data: JSON blob of this struct, updated_at: RFC3339
//
// The record is saved wholesale; the last writer wins.
type AppSettings struct {
	InstrumentTypes    []string            `json:"instrumentTypes"`
	Brands             []string            `json:"brands"`
	PredefinedServices []PredefinedService `json:"predefinedServices"`
	Luthiers           []Luthier           `json:"luthiers"`
}

// DefaultSettings returns a fresh copy of the built-in seed.
func DefaultSettings() AppSettings {
	return AppSettings{
		InstrumentTypes: []string{
			"Violão Nylon",
			"Violão Aço",
			"Guitarra",
			"Baixo",
			"Ukulele",
			"Cavaquinho",
			"Mandolim",
			"Viola",
		},
		Brands: []string{"Fender", "Gibson", "Ibanez", "Tagima", "Taylor", "Martin", "Yamaha", "Epiphone"},
		PredefinedServices: []PredefinedService{
			{Description: "Regulagem Completa", Price: 180},
			{Description: "Troca de Cordas", Price: 50},
			{Description: "Nivelamento de Trastes", Price: 350},
			{Description: "Elétrica (Limpeza/Troca)", Price: 100},
			{Description: "Colagem de Cavalete", Price: 400},
			{Description: "Troca de Nut/Rastilho", Price: 120},
		},
		Luthiers: []Luthier{
			{ID: "1", Name: "Luthier Principal", Color: "#ffffff"},
		},
	}
}

// IsZero reports a record with no vocabulary at all, which is treated as
// malformed.
func (s AppSettings) IsZero() bool {
	return len(s.InstrumentTypes) == 0 && len(s.Brands) == 0 &&
		len(s.PredefinedServices) == 0 && len(s.Luthiers) == 0
}

// Normalize replaces nil lists with empty ones.
func (s *AppSettings) Normalize() {
	if s.InstrumentTypes == nil {
		s.InstrumentTypes = []string{}
	}
	if s.Brands == nil {
		s.Brands = []string{}
	}
	if s.PredefinedServices == nil {
		s.PredefinedServices = []PredefinedService{}
	}
	if s.Luthiers == nil {
		s.Luthiers = []Luthier{}
	}
}

// ResolveLuthier looks up a luthier by id. An empty or dangling id is
// reported as unassigned (false), never as an error.
func (s AppSettings) ResolveLuthier(id string) (Luthier, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Luthier{}, false
	}
	for _, l := range s.Luthiers {
		if l.ID == id {
			return l, true
		}
	}
	return Luthier{}, false
}

// PredefinedService returns the template at index.
func (s AppSettings) PredefinedService(index int) (PredefinedService, bool) {
	if index < 0 || index >= len(s.PredefinedServices) {
		return PredefinedService{}, false
	}
	return s.PredefinedServices[index], true
}
