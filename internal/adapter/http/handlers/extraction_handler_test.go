package handlers

import (
	"net/http"
	"testing"

	"luthierflow/internal/adapter/http/handlers/mocks"
	"luthierflow/internal/domain/entities"
	"luthierflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExtractionHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockIExtractionUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIExtractionUseCase(ctrl)
		settings := mocks.NewMockISettingsUseCase(ctrl)
		settings.EXPECT().GetSettings(gomock.Any()).Return(entities.DefaultSettings()).AnyTimes()
		h := NewExtractionHandler(uc, settings)
		r := gin.New()
		r.POST("/v1/extractions", h.Extract)
		r.POST("/v1/orders/:id/extract", h.ExtractIntoOrder)
		return r, uc
	}

	t.Run("missing image", func(t *testing.T) {
		r, _ := newRouter(t)
		if w := doJSON(r, http.MethodPost, "/v1/extractions", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("extract", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Extract(gomock.Any(), "data:image/jpeg;base64,AAA").Return(entities.ExtractedOrderData{CustomerName: "Ana"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/extractions", `{"image":"data:image/jpeg;base64,AAA"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["extraction"].(map[string]any)["customerName"] != "Ana" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["order"]; ok {
			t.Fatalf("standalone extraction must not carry an order")
		}
	})

	t.Run("nothing extracted", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(entities.ExtractedOrderData{}, usecase.ErrNothingExtracted)

		if w := doJSON(r, http.MethodPost, "/v1/extractions", `{"image":"x"}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("extract into order", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().ExtractIntoOrder(gomock.Any(), "os-1", "AAA").
			Return(entities.ServiceOrder{ID: "os-1", Customer: entities.CustomerInfo{Name: "João"}}, entities.ExtractedOrderData{CustomerName: "Ana"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders/os-1/extract", `{"image":"AAA"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		order := decodeBody(t, w)["order"].(map[string]any)
		if order["customer"].(map[string]any)["name"] != "João" {
			t.Fatalf("unexpected order: %v", order)
		}
	})

	t.Run("extract into missing order", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().ExtractIntoOrder(gomock.Any(), "os-1", gomock.Any()).
			Return(entities.ServiceOrder{}, entities.ExtractedOrderData{}, usecase.ErrOrderNotFound)

		if w := doJSON(r, http.MethodPost, "/v1/orders/os-1/extract", `{"image":"AAA"}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
