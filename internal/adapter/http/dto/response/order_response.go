package response

import (
	"luthierflow/internal/domain/entities"
)

type TotalsResponse struct {
	TotalPrice float64 `json:"totalPrice"`
	TotalPaid  float64 `json:"totalPaid"`
	Balance    float64 `json:"balance"`
}

type LuthierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// OrderResponse is an order as shown to clients: the stored fields plus the
// derived totals and the resolved luthier (null when unassigned).
type OrderResponse struct {
	ID                    string                  `json:"id"`
	OrderNumber           string                  `json:"orderNumber"`
	Customer              entities.CustomerInfo   `json:"customer"`
	Instrument            entities.InstrumentInfo `json:"instrument"`
	Services              []entities.Service      `json:"services"`
	Payments              []entities.Payment      `json:"payments"`
	EntryDate             string                  `json:"entryDate"`
	DeliveryDate          string                  `json:"deliveryDate"`
	Status                string                  `json:"status"`
	Notes                 string                  `json:"notes"`
	HandwrittenNoteImages []string                `json:"handwrittenNoteImages"`
	LuthierID             string                  `json:"luthierId,omitempty"`
	Luthier               *LuthierResponse        `json:"luthier"`
	Deposit               float64                 `json:"deposit"`
	Totals                TotalsResponse          `json:"totals"`
}

func FromOrder(o entities.ServiceOrder, settings entities.AppSettings) OrderResponse {
	o.Normalize()
	totals := o.Totals()

	res := OrderResponse{
		ID:                    o.ID,
		OrderNumber:           o.OrderNumber,
		Customer:              o.Customer,
		Instrument:            o.Instrument,
		Services:              o.Services,
		Payments:              o.Payments,
		EntryDate:             o.EntryDate,
		DeliveryDate:          o.DeliveryDate,
		Status:                string(o.Status),
		Notes:                 o.Notes,
		HandwrittenNoteImages: o.HandwrittenNoteImages,
		LuthierID:             o.LuthierID,
		Deposit:               float64(o.Deposit()),
		Totals: TotalsResponse{
			TotalPrice: totals.TotalPrice.InexactFloat64(),
			TotalPaid:  totals.TotalPaid.InexactFloat64(),
			Balance:    totals.Balance.InexactFloat64(),
		},
	}
	if l, ok := settings.ResolveLuthier(o.LuthierID); ok {
		res.Luthier = &LuthierResponse{ID: l.ID, Name: l.Name, Color: l.Color}
	}
	return res
}

func FromOrders(orders []entities.ServiceOrder, settings entities.AppSettings) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o, settings))
	}
	return out
}

// CreatedOrderResponse reports whether the new order reached the remote
// store. Synced=false means it only exists in the local cache.
type CreatedOrderResponse struct {
	OrderResponse
	Synced bool `json:"synced"`
}

type OrderListResponse struct {
	Orders    []OrderResponse `json:"orders"`
	FromCache bool            `json:"fromCache"`
}

type BoardColumnResponse struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Orders []OrderResponse `json:"orders"`
}

// BoardResponse lists one column per status, in workflow order.
type BoardResponse struct {
	Columns   []BoardColumnResponse `json:"columns"`
	FromCache bool                  `json:"fromCache"`
}

func FromBoard(groups map[entities.OrderStatus][]entities.ServiceOrder, fromCache bool, settings entities.AppSettings) BoardResponse {
	res := BoardResponse{Columns: make([]BoardColumnResponse, 0, len(entities.OrderStatuses)), FromCache: fromCache}
	for _, s := range entities.OrderStatuses {
		orders := groups[s]
		res.Columns = append(res.Columns, BoardColumnResponse{
			Status: string(s),
			Count:  len(orders),
			Orders: FromOrders(orders, settings),
		})
	}
	return res
}
