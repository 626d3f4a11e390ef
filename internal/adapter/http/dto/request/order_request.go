package request

import (
	"errors"
	"strings"
	"time"

	"luthierflow/internal/domain/entities"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

type CustomerRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
}

type InstrumentRequest struct {
	Type  string `json:"type"`
	Brand string `json:"brand"`
}

type ChecklistItemRequest struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	IsCompleted bool   `json:"isCompleted"`
}

type ServiceLineRequest struct {
	ID          string                 `json:"id"`
	Description string                 `json:"description"`
	Price       entities.Amount        `json:"price"`
	Status      string                 `json:"status"`
	Checklist   []ChecklistItemRequest `json:"checklist"`
}

type PaymentRequest struct {
	ID          string          `json:"id"`
	Amount      entities.Amount `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// OrderRequest is the full order form, used on create and on whole-order
// replacement. Identity comes from the path on update. Omitted order number,
// dates, status and note images stay empty in the entity so the use case can
// default them on create or keep the stored ones on update.
type OrderRequest struct {
	OrderNumber           string               `json:"orderNumber"`
	Customer              CustomerRequest      `json:"customer"`
	Instrument            InstrumentRequest    `json:"instrument"`
	Services              []ServiceLineRequest `json:"services"`
	Payments              []PaymentRequest     `json:"payments"`
	EntryDate             string               `json:"entryDate"`
	DeliveryDate          string               `json:"deliveryDate"`
	Status                string               `json:"status"`
	Notes                 string               `json:"notes"`
	HandwrittenNoteImages []string             `json:"handwrittenNoteImages"`
	LuthierID             string               `json:"luthierId"`
}

func (r OrderRequest) ToEntity(id string) (entities.ServiceOrder, error) {
	o := entities.ServiceOrder{
		ID:          strings.TrimSpace(id),
		OrderNumber: strings.TrimSpace(r.OrderNumber),
		Customer: entities.CustomerInfo{
			Name:    strings.TrimSpace(r.Customer.Name),
			Contact: strings.TrimSpace(r.Customer.Contact),
			Phone:   strings.TrimSpace(r.Customer.Phone),
		},
		Instrument: entities.InstrumentInfo{
			Type:  strings.TrimSpace(r.Instrument.Type),
			Brand: strings.TrimSpace(r.Instrument.Brand),
		},
		Notes:                 r.Notes,
		HandwrittenNoteImages: r.HandwrittenNoteImages,
		LuthierID:             strings.TrimSpace(r.LuthierID),
	}

	for _, d := range []string{r.EntryDate, r.DeliveryDate} {
		if err := validateDate(d); err != nil {
			return entities.ServiceOrder{}, err
		}
	}
	o.EntryDate = strings.TrimSpace(r.EntryDate)
	o.DeliveryDate = strings.TrimSpace(r.DeliveryDate)

	if strings.TrimSpace(r.Status) != "" {
		status, err := entities.ParseOrderStatus(r.Status)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		o.Status = status
	}

	o.Services = make([]entities.Service, 0, len(r.Services))
	for _, s := range r.Services {
		checklist := make([]entities.ChecklistItem, 0, len(s.Checklist))
		for _, c := range s.Checklist {
			checklist = append(checklist, entities.ChecklistItem{ID: c.ID, Label: c.Label, IsCompleted: c.IsCompleted})
		}
		o.Services = append(o.Services, entities.Service{
			ID:          s.ID,
			Description: s.Description,
			Price:       s.Price,
			Status:      entities.ServiceStatus(strings.TrimSpace(s.Status)),
			Checklist:   checklist,
		})
	}

	o.Payments = make([]entities.Payment, 0, len(r.Payments))
	for _, p := range r.Payments {
		o.Payments = append(o.Payments, entities.Payment{
			ID:          p.ID,
			Amount:      p.Amount,
			Date:        p.Date,
			Description: p.Description,
		})
	}

	return o, nil
}

func validateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(entities.DateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DepositRequest struct {
	Amount entities.Amount `json:"amount"`
}

// ServiceRequest adds or edits a service line. On create, TemplateIndex picks
// a predefined service from the settings instead of description and price.
type ServiceRequest struct {
	Description   *string          `json:"description"`
	Price         *entities.Amount `json:"price"`
	TemplateIndex *int             `json:"templateIndex"`
}

type ImageRequest struct {
	Image string `json:"image" binding:"required"`
}
