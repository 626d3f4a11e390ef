package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "luthierflow/internal/adapter/http/dto/response"
	"luthierflow/internal/domain/entities"
	"luthierflow/internal/usecase"
	"luthierflow/pkg"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles deposit charges through the payment provider.
type DepositHandler struct {
	usecase  usecase.IDepositUseCase
	settings usecase.ISettingsUseCase
}

func NewDepositHandler(uc usecase.IDepositUseCase, settings usecase.ISettingsUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc, settings: settings}
}

// ChargeDeposit godoc
// @Summary  Charge the order deposit through Mercado Pago
// @Tags     orders
// @Param    id      path  string                        true  "Order id"
// @Param    charge  body  request.DepositChargeRequest  true  "Amount and Mercado Pago payload"
// @Success  200  {object}  response.DepositChargeResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /orders/{id}/deposit/charge [post]
func (h *DepositHandler) ChargeDeposit(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[deposit][handler] charge start order_id=%s", orderID)

	amount, mpPayload, err := readDepositCharge(c)
	if err != nil {
		log.Printf("[deposit][handler] invalid payload order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	charge, o, err := h.usecase.ChargeDeposit(c.Request.Context(), orderID, amount, mpPayload)
	if err != nil {
		log.Printf("[deposit][handler] charge failed order_id=%s err=%v", orderID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] charge done order_id=%s payment_id=%s status=%s", orderID, charge.ProviderPaymentID, charge.Status)

	settings := h.settings.GetSettings(c.Request.Context())
	c.JSON(http.StatusOK, response.FromDepositCharge(charge, o, settings))
}

// readDepositCharge accepts {"amount": 80, "mp_payload": {...}} or a bare
// Mercado Pago payload carrying an extra "amount" key.
func readDepositCharge(c *gin.Context) (entities.Amount, json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return 0, nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return 0, nil, errors.New("request body is empty")
	}
	if !json.Valid(raw) {
		return 0, nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return 0, nil, errors.New("request body must be an object")
	}

	var amount entities.Amount
	if v, ok := envelope["amount"]; ok {
		_ = json.Unmarshal(v, &amount)
	}

	if wrapped, ok := envelope["mp_payload"]; ok {
		if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
			return 0, nil, errors.New("mp_payload cannot be empty")
		}
		return amount, wrapped, nil
	}

	delete(envelope, "amount")
	payload, err := json.Marshal(envelope)
	if err != nil {
		return 0, nil, err
	}
	return amount, payload, nil
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDepositAmount):
		return pkg.NewDomainErrorSimple("INVALID_DEPOSIT_AMOUNT", "Deposit amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
