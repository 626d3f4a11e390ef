package response

import (
	"time"

	"luthierflow/internal/domain/entities"
)

type DepositChargeResponse struct {
	PaymentID string    `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`

	Order OrderResponse `json:"order"`
}

func FromDepositCharge(c entities.DepositCharge, o entities.ServiceOrder, settings entities.AppSettings) DepositChargeResponse {
	return DepositChargeResponse{
		PaymentID:    c.ProviderPaymentID,
		OrderID:      c.OrderID,
		Amount:       float64(c.Amount),
		Date:         c.Date,
		Status:       string(c.Status),
		MPPayloadRaw: string(c.MPPayloadRaw),
		MPPayload:    c.MPPayload,
		Order:        FromOrder(o, settings),
	}
}
