package interfaces

import (
	"context"
	"encoding/json"

	"luthierflow/internal/domain/entities"
)

// IPaymentGateway charges order deposits with an external provider (e.g. Mercado Pago).
//
// The payload carries what the client chose (payer, payment method); the
// gateway binds it to the order and amount. The provider response is kept
// raw on the returned charge.

type IPaymentGateway interface {
	ChargeDeposit(ctx context.Context, order entities.ServiceOrder, amount entities.Amount, payload json.RawMessage) (entities.DepositCharge, error)
}
