package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "luthierflow/internal/adapter/http/dto/request"
	response "luthierflow/internal/adapter/http/dto/response"
	"luthierflow/internal/domain/entities"
	"luthierflow/internal/usecase"
	"luthierflow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidIndex        = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid index", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for service orders.
//
// Settings are loaded per request so luthier and template lookups always see
// the latest saved vocabulary.

type OrderHandler struct {
	orders   usecase.IOrderUseCase
	settings usecase.ISettingsUseCase
}

func NewOrderHandler(orders usecase.IOrderUseCase, settings usecase.ISettingsUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, settings: settings}
}

// ListOrders godoc
// @Summary  List service orders, newest first
// @Tags     orders
// @Param    q  query  string  false  "Search by customer name, order number or brand"
// @Success  200  {object}  response.OrderListResponse
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	listing := h.orders.SearchOrders(c.Request.Context(), c.Query("q"))
	settings := h.settings.GetSettings(c.Request.Context())

	c.JSON(http.StatusOK, response.OrderListResponse{
		Orders:    response.FromOrders(listing.Orders, settings),
		FromCache: listing.FromCache,
	})
}

// Board godoc
// @Summary  Orders grouped by status
// @Tags     orders
// @Param    q  query  string  false  "Search by customer name, order number or brand"
// @Success  200  {object}  response.BoardResponse
// @Router   /orders/board [get]
func (h *OrderHandler) Board(c *gin.Context) {
	groups, fromCache := h.orders.Board(c.Request.Context(), c.Query("q"))
	settings := h.settings.GetSettings(c.Request.Context())
	c.JSON(http.StatusOK, response.FromBoard(groups, fromCache, settings))
}

// CreateOrder godoc
// @Summary  Create a service order
// @Tags     orders
// @Param    order  body  request.OrderRequest  true  "Order"
// @Success  201  {object}  response.CreatedOrderResponse
// @Success  202  {object}  response.CreatedOrderResponse  "Saved locally only"
// @Failure  400  {object}  pkg.HTTPError
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	o, err := payload.ToEntity("")
	if err != nil {
		h.fail(c, err)
		return
	}

	created, err := h.orders.CreateOrder(c.Request.Context(), o)
	settings := h.settings.GetSettings(c.Request.Context())
	if errors.Is(err, usecase.ErrOrderNotSynced) {
		log.Printf("[order][handler] create kept locally order_id=%s err=%v", created.ID, err)
		c.JSON(http.StatusAccepted, response.CreatedOrderResponse{OrderResponse: response.FromOrder(created, settings), Synced: false})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.CreatedOrderResponse{OrderResponse: response.FromOrder(created, settings), Synced: true})
}

// GetOrder godoc
// @Summary  Get a service order
// @Tags     orders
// @Param    id  path  string  true  "Order id"
// @Success  200  {object}  response.OrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, http.StatusOK, o)
}

// UpdateOrder godoc
// @Summary  Replace a service order
// @Tags     orders
// @Param    id     path  string                true  "Order id"
// @Param    order  body  request.OrderRequest  true  "Order"
// @Success  200  {object}  response.OrderResponse
// @Router   /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	o, err := payload.ToEntity(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	updated, err := h.orders.UpdateOrder(c.Request.Context(), o)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, http.StatusOK, updated)
}

// DeleteOrder godoc
// @Summary  Delete a service order
// @Tags     orders
// @Param    id  path  string  true  "Order id"
// @Success  204
// @Router   /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orders.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateStatus godoc
// @Summary  Move an order to any status
// @Tags     orders
// @Param    id      path  string                 true  "Order id"
// @Param    status  body  request.StatusRequest  true  "Target status"
// @Success  200  {object}  response.OrderResponse
// @Router   /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.orders.TransitionStatus(c.Request.Context(), c.Param("id"), entities.OrderStatus(payload.Status))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, http.StatusOK, o)
}

// SetDeposit godoc
// @Summary  Record the order deposit (replaces every payment)
// @Tags     orders
// @Param    id       path  string                  true  "Order id"
// @Param    deposit  body  request.DepositRequest  true  "Deposit"
// @Success  200  {object}  response.OrderResponse
// @Router   /orders/{id}/deposit [put]
func (h *OrderHandler) SetDeposit(c *gin.Context) {
	var payload request.DepositRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.orders.SetDeposit(c.Request.Context(), c.Param("id"), payload.Amount)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, http.StatusOK, o)
}

// AddService godoc
// @Summary  Add a service line, free-form or from a predefined template
// @Tags     services
// @Param    id       path  string                  true  "Order id"
// @Param    service  body  request.ServiceRequest  true  "Service"
// @Success  201  {object}  response.OrderResponse
// @Router   /orders/{id}/services [post]
func (h *OrderHandler) AddService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	var (
		o   entities.ServiceOrder
		err error
	)
	if payload.TemplateIndex != nil {
		settings := h.settings.GetSettings(c.Request.Context())
		o, err = h.orders.AddServiceFromTemplate(c.Request.Context(), c.Param("id"), settings, *payload.TemplateIndex)
	} else {
		var description string
		var price entities.Amount
		if payload.Description != nil {
			description = *payload.Description
		}
		if payload.Price != nil {
			price = *payload.Price
		}
		o, err = h.orders.AddService(c.Request.Context(), c.Param("id"), description, price)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, http.StatusCreated, o)
}

// UpdateService godoc
// @Summary  Edit a service line
// @Tags     services
// @Param    id       path  string                  true  "Order id"
// @Param    index    path  int                     true  "Service position"
// @Param    service  body  request.ServiceRequest  true  "Fields to change"
// @Success  200  {object}  response.OrderResponse
// @Router   /orders/{id}/services/{index} [patch]
func (h *OrderHandler) UpdateService(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.orders.UpdateService(c.Request.Context(), c.Param("id"), index, payload.Description, payload.Price)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, http.StatusOK, o)
}

// RemoveService godoc
// @Summary  Remove a service line
// @Tags     services
// @Param    id     path  string  true  "Order id"
// @Param    index  path  int     true  "Service position"
// @Success  200  {object}  response.OrderResponse
// @Router   /orders/{id}/services/{index} [delete]
func (h *OrderHandler) RemoveService(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	o, err := h.orders.RemoveService(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, http.StatusOK, o)
}

// AddNoteImage godoc
// @Summary  Attach a handwritten note photo
// @Tags     images
// @Param    id     path  string                true  "Order id"
// @Param    image  body  request.ImageRequest  true  "Data URI"
// @Success  201  {object}  response.OrderResponse
// @Router   /orders/{id}/images [post]
func (h *OrderHandler) AddNoteImage(c *gin.Context) {
	var payload request.ImageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	o, err := h.orders.AddNoteImage(c.Request.Context(), c.Param("id"), payload.Image)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, http.StatusCreated, o)
}

// RemoveNoteImage godoc
// @Summary  Remove a handwritten note photo
// @Tags     images
// @Param    id     path  string  true  "Order id"
// @Param    index  path  int     true  "Image position"
// @Success  200  {object}  response.OrderResponse
// @Router   /orders/{id}/images/{index} [delete]
func (h *OrderHandler) RemoveNoteImage(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	o, err := h.orders.RemoveNoteImage(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, http.StatusOK, o)
}

func (h *OrderHandler) respond(c *gin.Context, status int, o entities.ServiceOrder) {
	settings := h.settings.GetSettings(c.Request.Context())
	c.JSON(status, response.FromOrder(o, settings))
}

func (h *OrderHandler) fail(c *gin.Context, err error) {
	log.Printf("[order][handler] %s %s failed order_id=%s err=%v", c.Request.Method, c.FullPath(), c.Param("id"), err)
	appErr := mapOrderError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func pathIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidIndex.HTTPStatus, errInvalidIndex.ToHTTPError())
		return 0, false
	}
	return index, true
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrCustomerNameRequired):
		return pkg.NewDomainErrorSimple("CUSTOMER_NAME_REQUIRED", "Customer name is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Invalid order status", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMultiplePayments):
		return pkg.NewDomainErrorSimple("MULTIPLE_PAYMENTS", "An order holds a single deposit payment", http.StatusBadRequest)
	case errors.Is(err, entities.ErrEmptyNoteImage):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "Image is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrServiceIndexOutOfRange):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceTemplateNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_TEMPLATE_NOT_FOUND", "Predefined service not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrImageIndexOutOfRange):
		return pkg.NewDomainErrorSimple("IMAGE_NOT_FOUND", "Image not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
