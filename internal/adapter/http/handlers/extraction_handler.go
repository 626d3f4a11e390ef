package handlers

import (
	"errors"
	"log"
	"net/http"

	request "luthierflow/internal/adapter/http/dto/request"
	response "luthierflow/internal/adapter/http/dto/response"
	"luthierflow/internal/usecase"
	"luthierflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExtractionPayload = pkg.NewDomainErrorSimple("INVALID_EXTRACTION_INPUT", "Invalid extraction payload", http.StatusBadRequest)

// ExtractionHandler reads photographed handwritten notes.
type ExtractionHandler struct {
	usecase  usecase.IExtractionUseCase
	settings usecase.ISettingsUseCase
}

func NewExtractionHandler(uc usecase.IExtractionUseCase, settings usecase.ISettingsUseCase) *ExtractionHandler {
	return &ExtractionHandler{usecase: uc, settings: settings}
}

// Extract godoc
// @Summary  Extract order hints from a note photo, without saving
// @Tags     extraction
// @Param    image  body  request.ExtractionRequest  true  "Data URI"
// @Success  200  {object}  response.ExtractionResponse
// @Failure  422  {object}  pkg.HTTPError
// @Router   /extractions [post]
func (h *ExtractionHandler) Extract(c *gin.Context) {
	var payload request.ExtractionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExtractionPayload.HTTPStatus, errInvalidExtractionPayload.ToHTTPError())
		return
	}

	data, err := h.usecase.Extract(c.Request.Context(), payload.Image)
	if err != nil {
		appErr := mapExtractionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ExtractionResponse{Extraction: data})
}

// ExtractIntoOrder godoc
// @Summary  Extract a note photo and merge it into an order
// @Tags     extraction
// @Param    id     path  string                     true  "Order id"
// @Param    image  body  request.ExtractionRequest  true  "Data URI"
// @Success  200  {object}  response.ExtractionResponse
// @Failure  422  {object}  pkg.HTTPError
// @Router   /orders/{id}/extract [post]
func (h *ExtractionHandler) ExtractIntoOrder(c *gin.Context) {
	var payload request.ExtractionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExtractionPayload.HTTPStatus, errInvalidExtractionPayload.ToHTTPError())
		return
	}

	o, data, err := h.usecase.ExtractIntoOrder(c.Request.Context(), c.Param("id"), payload.Image)
	if err != nil {
		log.Printf("[extraction][handler] extract-into-order failed order_id=%s err=%v", c.Param("id"), err)
		appErr := mapExtractionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromOrder(o, h.settings.GetSettings(c.Request.Context()))
	c.JSON(http.StatusOK, response.ExtractionResponse{Extraction: data, Order: &res})
}

func mapExtractionError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrNothingExtracted) {
		return pkg.NewDomainErrorSimple("NOTHING_EXTRACTED", "Could not read the note, please fill the order manually", http.StatusUnprocessableEntity)
	}
	return mapOrderError(err)
}
