package entities

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the workshop workflow of a service order (OS).
//
// Domain notes:
//   - Any status is reachable from any other; the workshop overrides status
//     manually, including moving an order backward (ENTREGUE -> PENDENTE).
//   - No timestamps are recorded on transition.

type OrderStatus string

const (
	OrderStatusPendente    OrderStatus = "PENDENTE"
	OrderStatusEmAndamento OrderStatus = "EM_ANDAMENTO"
	OrderStatusPronto      OrderStatus = "PRONTO"
	OrderStatusEntregue    OrderStatus = "ENTREGUE"
)

// OrderStatuses lists the statuses in workflow order.
var OrderStatuses = []OrderStatus{
	OrderStatusPendente,
	OrderStatusEmAndamento,
	OrderStatusPronto,
	OrderStatusEntregue,
}

// ServiceStatus is tracked per service line but never transitioned yet.
type ServiceStatus string

const (
	ServiceStatusPendente    ServiceStatus = "PENDENTE"
	ServiceStatusEmAndamento ServiceStatus = "EM_ANDAMENTO"
	ServiceStatusConcluido   ServiceStatus = "CONCLUÍDO"
)

const (
	// DateLayout is the calendar-date format of entry and delivery dates.
	DateLayout = "2006-01-02"

	DepositPaymentID          = "entrada-principal"
	DepositPaymentDescription = "Entrada"

	DefaultInstrumentType = "Guitarra"
	defaultDeliveryDays   = 7
)

var (
	ErrInvalidOrderStatus     = errors.New("invalid order status")
	ErrCustomerNameRequired   = errors.New("customer name is required")
	ErrServiceIndexOutOfRange = errors.New("service index out of range")
	ErrImageIndexOutOfRange   = errors.New("image index out of range")
	ErrEmptyNoteImage         = errors.New("note image is empty")
	ErrMultiplePayments       = errors.New("an order holds at most one payment, the deposit")
)

type ChecklistItem struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	IsCompleted bool   `json:"isCompleted"`
}

// Service is one billable line of an order.
type Service struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Price       Amount          `json:"price"`
	Status      ServiceStatus   `json:"status"`
	Checklist   []ChecklistItem `json:"checklist"`
}

type Payment struct {
	ID          string    `json:"id"`
	Amount      Amount    `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
}

type InstrumentInfo struct {
	Type  string `json:"type"`
	Brand string `json:"brand"`
}

// ServiceOrder is the root aggregate of the workshop.
//
// Storage model (DynamoDB):
//   - PK: id
//   - entry_date is used for listing (newest first)
//
// Identity:
//   - ID is generated once and never changes.
//   - OrderNumber is a short display code and is never used for lookups.
//   - LuthierID is a weak reference into AppSettings.Luthiers; a dangling id
//     means "unassigned".
type ServiceOrder struct {
	ID                    string         `json:"id"`
	OrderNumber           string         `json:"orderNumber"`
	Customer              CustomerInfo   `json:"customer"`
	Instrument            InstrumentInfo `json:"instrument"`
	Services              []Service      `json:"services"`
	Payments              []Payment      `json:"payments"`
	EntryDate             string         `json:"entryDate"`
	DeliveryDate          string         `json:"deliveryDate"`
	Status                OrderStatus    `json:"status"`
	Notes                 string         `json:"notes"`
	HandwrittenNoteImages []string       `json:"handwrittenNoteImages"`
	LuthierID             string         `json:"luthierId,omitempty"`
}

// NewServiceOrder builds a blank order with the workshop defaults.
func NewServiceOrder(now time.Time) ServiceOrder {
	return ServiceOrder{
		ID:                    uuid.NewString(),
		OrderNumber:           NewOrderNumber(),
		Instrument:            InstrumentInfo{Type: DefaultInstrumentType},
		Services:              []Service{},
		Payments:              []Payment{},
		EntryDate:             now.Format(DateLayout),
		DeliveryDate:          now.AddDate(0, 0, defaultDeliveryDays).Format(DateLayout),
		Status:                OrderStatusPendente,
		HandwrittenNoteImages: []string{},
	}
}

// NewOrderNumber returns a 4-digit display code. Collisions are possible.
func NewOrderNumber() string {
	return strconv.Itoa(1000 + rand.IntN(9000))
}

// ParseOrderStatus accepts stored values and their English aliases.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	switch s {
	case string(OrderStatusPendente), "PENDING":
		return OrderStatusPendente, nil
	case string(OrderStatusEmAndamento), "IN_PROGRESS":
		return OrderStatusEmAndamento, nil
	case string(OrderStatusPronto), "READY":
		return OrderStatusPronto, nil
	case string(OrderStatusEntregue), "DELIVERED":
		return OrderStatusEntregue, nil
	}
	return "", ErrInvalidOrderStatus
}

func (s OrderStatus) Valid() bool {
	_, err := ParseOrderStatus(string(s))
	return err == nil
}

// Normalize fills nil collections and missing defaults on orders read back
// from storage or decoded from clients.
func (o *ServiceOrder) Normalize() {
	if o.Services == nil {
		o.Services = []Service{}
	}
	for i := range o.Services {
		if o.Services[i].Checklist == nil {
			o.Services[i].Checklist = []ChecklistItem{}
		}
		if o.Services[i].Status == "" {
			o.Services[i].Status = ServiceStatusPendente
		}
	}
	if o.Payments == nil {
		o.Payments = []Payment{}
	}
	if o.HandwrittenNoteImages == nil {
		o.HandwrittenNoteImages = []string{}
	}
	if o.Status == "" {
		o.Status = OrderStatusPendente
	}
}

// ValidateForSave is the only check applied before persisting.
func (o ServiceOrder) ValidateForSave() error {
	if strings.TrimSpace(o.Customer.Name) == "" {
		return ErrCustomerNameRequired
	}
	if len(o.Payments) > 1 {
		return ErrMultiplePayments
	}
	return nil
}

// KeepStoredFields fills what a whole-order replacement left empty from the
// stored order: order number, dates, status and note images (nil only).
func (o *ServiceOrder) KeepStoredFields(stored ServiceOrder) {
	if strings.TrimSpace(o.OrderNumber) == "" {
		o.OrderNumber = stored.OrderNumber
	}
	if strings.TrimSpace(o.EntryDate) == "" {
		o.EntryDate = stored.EntryDate
	}
	if strings.TrimSpace(o.DeliveryDate) == "" {
		o.DeliveryDate = stored.DeliveryDate
	}
	if o.Status == "" {
		o.Status = stored.Status
	}
	if o.HandwrittenNoteImages == nil {
		o.HandwrittenNoteImages = stored.HandwrittenNoteImages
	}
}

// TransitionStatus overwrites the status. Every known status is accepted
// from every other status.
func (o *ServiceOrder) TransitionStatus(status OrderStatus) error {
	parsed, err := ParseOrderStatus(string(status))
	if err != nil {
		return err
	}
	o.Status = parsed
	return nil
}

// SetDeposit replaces all payments with a single deposit record.
// Amount is not validated: zero, negative and overpaying deposits are kept.
func (o *ServiceOrder) SetDeposit(amount Amount, now time.Time) {
	o.Payments = []Payment{{
		ID:          DepositPaymentID,
		Amount:      amount,
		Date:        now.UTC(),
		Description: DepositPaymentDescription,
	}}
}

// Deposit returns the current deposit amount, zero when none was recorded.
func (o ServiceOrder) Deposit() Amount {
	for _, p := range o.Payments {
		if p.ID == DepositPaymentID {
			return p.Amount
		}
	}
	return 0
}

func (o *ServiceOrder) AddService(description string, price Amount) Service {
	s := Service{
		ID:          uuid.NewString(),
		Description: description,
		Price:       price,
		Status:      ServiceStatusPendente,
		Checklist:   []ChecklistItem{},
	}
	o.Services = append(o.Services, s)
	return s
}

func (o *ServiceOrder) AddServiceFromTemplate(t PredefinedService) Service {
	return o.AddService(t.Description, t.Price)
}

// UpdateService edits a service line in place. Nil fields are left unchanged.
func (o *ServiceOrder) UpdateService(index int, description *string, price *Amount) (Service, error) {
	if index < 0 || index >= len(o.Services) {
		return Service{}, ErrServiceIndexOutOfRange
	}
	if description != nil {
		o.Services[index].Description = *description
	}
	if price != nil {
		o.Services[index].Price = *price
	}
	return o.Services[index], nil
}

func (o *ServiceOrder) RemoveService(index int) error {
	if index < 0 || index >= len(o.Services) {
		return ErrServiceIndexOutOfRange
	}
	o.Services = append(o.Services[:index:index], o.Services[index+1:]...)
	return nil
}

func (o *ServiceOrder) AddNoteImage(dataURI string) error {
	if strings.TrimSpace(dataURI) == "" {
		return ErrEmptyNoteImage
	}
	o.HandwrittenNoteImages = append(o.HandwrittenNoteImages, dataURI)
	return nil
}

func (o *ServiceOrder) RemoveNoteImage(index int) error {
	if index < 0 || index >= len(o.HandwrittenNoteImages) {
		return ErrImageIndexOutOfRange
	}
	o.HandwrittenNoteImages = append(o.HandwrittenNoteImages[:index:index], o.HandwrittenNoteImages[index+1:]...)
	return nil
}

// MatchesSearch mirrors the dashboard filter: customer name and brand are
// matched case-insensitively, the order number literally.
func (o ServiceOrder) MatchesSearch(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(o.Customer.Name), lower) ||
		strings.Contains(o.OrderNumber, term) ||
		strings.Contains(strings.ToLower(o.Instrument.Brand), lower)
}

// GroupByStatus buckets orders per status, keeping their relative order.
// Every status has an entry, possibly empty.
func GroupByStatus(orders []ServiceOrder) map[OrderStatus][]ServiceOrder {
	groups := make(map[OrderStatus][]ServiceOrder, len(OrderStatuses))
	for _, s := range OrderStatuses {
		groups[s] = []ServiceOrder{}
	}
	for _, o := range orders {
		if _, ok := groups[o.Status]; ok {
			groups[o.Status] = append(groups[o.Status], o)
		}
	}
	return groups
}
