package entities

import (
	"strings"
)

type ExtractedService struct {
	Description string `json:"description"`
	Price       Amount `json:"price"`
}

// ExtractedOrderData is the best-effort reading of a handwritten note.
// Every field is an optional hint.
type ExtractedOrderData struct {
	CustomerName   string             `json:"customerName,omitempty"`
	Contact        string             `json:"contact,omitempty"`
	InstrumentType string             `json:"instrumentType,omitempty"`
	Brand          string             `json:"brand,omitempty"`
	Model          string             `json:"model,omitempty"`
	Services       []ExtractedService `json:"services,omitempty"`
	TotalPrice     *Amount            `json:"totalPrice,omitempty"`
	Notes          string             `json:"notes,omitempty"`
}

// MergeExtraction folds extracted hints into a draft without overwriting
// anything the user typed:
//   - customer name, contact, instrument type and brand are filled only when empty
//   - extracted services are appended as new pending lines
//   - notes (and the model, which has no field of its own) are appended
//
// TotalPrice is ignored since totals are always derived from services.
func MergeExtraction(o ServiceOrder, data ExtractedOrderData) ServiceOrder {
	fill := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	fill(&o.Customer.Name, data.CustomerName)
	fill(&o.Customer.Contact, data.Contact)
	fill(&o.Instrument.Type, data.InstrumentType)
	fill(&o.Instrument.Brand, data.Brand)

	services := make([]Service, len(o.Services), len(o.Services)+len(data.Services))
	copy(services, o.Services)
	o.Services = services
	for _, s := range data.Services {
		o.AddService(strings.TrimSpace(s.Description), s.Price)
	}

	if m := strings.TrimSpace(data.Model); m != "" {
		o.Notes = appendNote(o.Notes, "Modelo: "+m)
	}
	if n := strings.TrimSpace(data.Notes); n != "" {
		o.Notes = appendNote(o.Notes, n)
	}
	return o
}

func appendNote(existing, extra string) string {
	existing = strings.TrimRight(existing, " \n")
	if existing == "" {
		return extra
	}
	return existing + "\n" + extra
}
