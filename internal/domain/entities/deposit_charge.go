package entities

import (
	"encoding/json"
	"time"
)

// ChargeStatus represents the payment provider outcome of a deposit charge.

type ChargeStatus string

const (
	ChargeStatusPendente ChargeStatus = "pendente"
	ChargeStatusAprovado ChargeStatus = "aprovado"
	ChargeStatusNegado   ChargeStatus = "negado"
)

// DepositCharge is the result of collecting an order deposit through
// Mercado Pago.
//
// Only an approved charge is recorded on the order, as its deposit payment.
// The provider payload is kept for traceability:
//   - MPPayloadRaw keeps the original body (JSON).
//   - MPPayload is an optional parsed representation.

type DepositCharge struct {
	ProviderPaymentID string       `json:"provider_payment_id"`
	OrderID           string       `json:"order_id"`
	Amount            Amount       `json:"amount"`
	Date              time.Time    `json:"date"`
	Status            ChargeStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// ChargeStatusFromProvider maps Mercado Pago payment statuses.
func ChargeStatusFromProvider(providerStatus string) ChargeStatus {
	switch providerStatus {
	case "approved", "authorized":
		return ChargeStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return ChargeStatusNegado
	default:
		return ChargeStatusPendente
	}
}
