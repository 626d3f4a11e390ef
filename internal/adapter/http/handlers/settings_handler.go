package handlers

import (
	"log"
	"net/http"

	request "luthierflow/internal/adapter/http/dto/request"
	response "luthierflow/internal/adapter/http/dto/response"
	"luthierflow/internal/usecase"
	"luthierflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetSettings godoc
// @Summary  Shop vocabularies (defaults when nothing was saved)
// @Tags     settings
// @Success  200  {object}  response.SettingsResponse
// @Router   /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSettings(h.usecase.GetSettings(c.Request.Context())))
}

// SaveSettings godoc
// @Summary  Replace the shop vocabularies
// @Tags     settings
// @Param    settings  body  request.SettingsRequest  true  "Settings"
// @Success  200  {object}  response.SettingsResponse
// @Router   /settings [put]
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.SaveSettings(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[settings][handler] save failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(saved))
}
