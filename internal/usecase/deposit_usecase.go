package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"luthierflow/internal/config"
	"luthierflow/internal/domain/entities"
	"luthierflow/internal/usecase/interfaces"
)

var (
	ErrInvalidDepositAmount           = errors.New("deposit amount must be greater than zero")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IDepositUseCase charges the order deposit through the payment provider.
//
// Only an approved charge changes the order: its amount becomes the single
// deposit payment. Pending or declined charges are returned untouched.
type IDepositUseCase interface {
	ChargeDeposit(ctx context.Context, orderID string, amount entities.Amount, mpPayload json.RawMessage) (entities.DepositCharge, entities.ServiceOrder, error)
}

// depositRecorder is the part of the order flow used to store an approved
// deposit.
type depositRecorder interface {
	SetDeposit(ctx context.Context, id string, amount entities.Amount) (entities.ServiceOrder, error)
}

// DepositOptions controls payload checks. StrictPayload is off when the
// gateway runs in mock mode, so an empty body is enough to charge.
type DepositOptions struct {
	StrictPayload   bool
	SandboxToken    bool
	TestPayerEmail  string
	TestPayerUserID string
}

func DepositOptionsFromConfig(cfg config.Config) DepositOptions {
	return DepositOptions{
		StrictPayload:   !cfg.PaymentGatewayMock,
		SandboxToken:    strings.HasPrefix(strings.TrimSpace(cfg.MercadoPagoAccessToken), "TEST-"),
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	}
}

type DepositUseCase struct {
	orders   interfaces.IOrderRepository
	recorder depositRecorder
	gateway  interfaces.IPaymentGateway
	opts     DepositOptions
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(orders interfaces.IOrderRepository, recorder depositRecorder, gateway interfaces.IPaymentGateway, opts DepositOptions) *DepositUseCase {
	return &DepositUseCase{orders: orders, recorder: recorder, gateway: gateway, opts: opts}
}

func (u *DepositUseCase) ChargeDeposit(ctx context.Context, orderID string, amount entities.Amount, mpPayload json.RawMessage) (entities.DepositCharge, entities.ServiceOrder, error) {
	log.Printf("[deposit][usecase] charge start raw_order_id=%q amount=%.2f payload_len=%d", orderID, float64(amount), len(mpPayload))
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.DepositCharge{}, entities.ServiceOrder{}, ErrInvalidOrderID
	}
	amount = amount.Sanitized()
	if amount <= 0 {
		log.Printf("[deposit][usecase] invalid amount order_id=%s amount=%.2f", orderID, float64(amount))
		return entities.DepositCharge{}, entities.ServiceOrder{}, ErrInvalidDepositAmount
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if u.opts.StrictPayload {
			log.Printf("[deposit][usecase] invalid payload order_id=%s", orderID)
			return entities.DepositCharge{}, entities.ServiceOrder{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[deposit][usecase] gateway not configured order_id=%s", orderID)
		return entities.DepositCharge{}, entities.ServiceOrder{}, ErrPaymentGatewayNotConfigured
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[deposit][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.DepositCharge{}, entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		log.Printf("[deposit][usecase] order not found order_id=%s", orderID)
		return entities.DepositCharge{}, entities.ServiceOrder{}, ErrOrderNotFound
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if u.opts.StrictPayload {
			log.Printf("[deposit][usecase] payload is not an object order_id=%s", orderID)
			return entities.DepositCharge{}, entities.ServiceOrder{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if u.opts.StrictPayload {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[deposit][usecase] missing payment_method_id order_id=%s", orderID)
			return entities.DepositCharge{}, entities.ServiceOrder{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[deposit][usecase] missing/invalid payer order_id=%s", orderID)
			return entities.DepositCharge{}, entities.ServiceOrder{}, ErrInvalidMPPayload
		}
	}

	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.DepositCharge{}, entities.ServiceOrder{}, err
	}

	log.Printf("[deposit][usecase] calling payment gateway order_id=%s", orderID)
	charge, err := u.gateway.ChargeDeposit(ctx, o, amount, payload)
	if err != nil {
		log.Printf("[deposit][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
		return entities.DepositCharge{}, entities.ServiceOrder{}, mapGatewayError(err)
	}
	log.Printf("[deposit][usecase] payment gateway success order_id=%s provider_payment_id=%s status=%s", orderID, charge.ProviderPaymentID, charge.Status)

	if charge.Status != entities.ChargeStatusAprovado {
		log.Printf("[deposit][usecase] charge not approved; order unchanged order_id=%s status=%s", orderID, charge.Status)
		return charge, o, nil
	}

	updated, err := u.recorder.SetDeposit(ctx, orderID, amount)
	if err != nil {
		log.Printf("[deposit][usecase] charge approved but deposit not recorded order_id=%s provider_payment_id=%s err=%v", orderID, charge.ProviderPaymentID, err)
		return charge, o, err
	}
	log.Printf("[deposit][usecase] charge success order_id=%s provider_payment_id=%s", orderID, charge.ProviderPaymentID)
	return charge, updated, nil
}

func (u *DepositUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.opts.TestPayerEmail != "" {
			payer["email"] = u.opts.TestPayerEmail
		} else if u.opts.SandboxToken {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *DepositUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.SandboxToken || u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID != u.opts.TestPayerUserID {
		return
	}

	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	log.Printf("[deposit][usecase] mapped sandbox payer user_id to payer.email")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
