package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	appconfig "luthierflow/internal/config"
	"luthierflow/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges order deposits through the Mercado Pago
// payments API.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

// NewMercadoPagoGateway builds the deposit charge gateway. In mock mode every
// charge is approved locally and the SDK is never called.
func NewMercadoPagoGateway(cfg appconfig.Config) (*MercadoPagoGateway, error) {
	if cfg.PaymentGatewayMock {
		log.Printf("[deposit][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if cfg.MercadoPagoAccessToken == "" {
		log.Printf("[deposit][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("[deposit][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[deposit][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg)}, nil
}

// ChargeDeposit creates a payment for the deposit of an order. The order id
// goes to external_reference so provider notifications can be reconciled.
func (g *MercadoPagoGateway) ChargeDeposit(ctx context.Context, o entities.ServiceOrder, amount entities.Amount, payload json.RawMessage) (entities.DepositCharge, error) {
	if g == nil || (!g.mockMode && g.client == nil) {
		log.Printf("[deposit][gateway] gateway not configured")
		return entities.DepositCharge{}, ErrMercadoPagoGatewayNotConfigured
	}

	body, err := depositBody(o, amount, payload)
	if err != nil {
		log.Printf("[deposit][gateway] payload is not an object order_id=%s err=%v", o.ID, err)
		return entities.DepositCharge{}, err
	}

	if g.mockMode {
		return mockCharge(o.ID, amount, body)
	}

	log.Printf("[deposit][gateway] create start order_id=%s amount=%.2f", o.ID, float64(amount))
	raw, err := json.Marshal(body)
	if err != nil {
		return entities.DepositCharge{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Printf("[deposit][gateway] payload does not fit a payment request order_id=%s err=%v", o.ID, err)
		return entities.DepositCharge{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[deposit][gateway] sdk create failed order_id=%s err=%v", o.ID, err)
		return entities.DepositCharge{}, err
	}

	respRaw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[deposit][gateway] response marshal failed order_id=%s err=%v", o.ID, err)
		return entities.DepositCharge{}, err
	}
	log.Printf("[deposit][gateway] create success order_id=%s provider_payment_id=%d provider_status=%s", o.ID, resp.ID, resp.Status)

	return newDepositCharge(o.ID, amount, fmt.Sprintf("%d", resp.ID), resp.Status, respRaw), nil
}

// depositBody binds the client payload to the order. The amount always comes
// from the charge; reference and description are only filled when absent.
func depositBody(o entities.ServiceOrder, amount entities.Amount, payload json.RawMessage) (map[string]any, error) {
	body := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &body); err != nil {
			return nil, err
		}
		if body == nil {
			body = map[string]any{}
		}
	}

	if _, ok := body["external_reference"]; !ok {
		body["external_reference"] = o.ID
	}
	if _, ok := body["description"]; !ok {
		body["description"] = fmt.Sprintf("%s OS #%s", entities.DepositPaymentDescription, o.OrderNumber)
	}
	body["transaction_amount"] = float64(amount)
	return body, nil
}

// mockCharge approves the deposit and echoes the request as the provider
// response.
func mockCharge(orderID string, amount entities.Amount, body map[string]any) (entities.DepositCharge, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := make(map[string]any, len(body)+4)
	for k, v := range body {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_approved"] = now

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[deposit][gateway] mock response marshal failed order_id=%s err=%v", orderID, err)
		return entities.DepositCharge{}, err
	}
	log.Printf("[deposit][gateway] mock charge approved order_id=%s provider_payment_id=%s", orderID, id)
	return newDepositCharge(orderID, amount, id, "approved", raw), nil
}

func newDepositCharge(orderID string, amount entities.Amount, providerPaymentID, providerStatus string, raw json.RawMessage) entities.DepositCharge {
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("[deposit][gateway] provider response unmarshal failed order_id=%s err=%v", orderID, err)
	}
	return entities.DepositCharge{
		ProviderPaymentID: providerPaymentID,
		OrderID:           orderID,
		Amount:            amount,
		Date:              time.Now().UTC(),
		Status:            entities.ChargeStatusFromProvider(providerStatus),
		MPPayloadRaw:      raw,
		MPPayload:         parsed,
	}
}
