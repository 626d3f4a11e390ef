package request

import (
	"encoding/json"

	"luthierflow/internal/domain/entities"
)

// DepositChargeRequest is the payload of the deposit charge route.
//
// `mp_payload` is forwarded to Mercado Pago after enrichment, so it may follow
// any of the provider's payment schemas.

type DepositChargeRequest struct {
	Amount    entities.Amount `json:"amount"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
