package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"luthierflow/internal/domain/entities"
	mock_interfaces "luthierflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var jpegDataURI = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("fake-jpeg"))

func TestExtractionUseCase_Extract(t *testing.T) {
	t.Run("strips data uri prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		extractor := mock_interfaces.NewMockIOrderExtractor(ctrl)
		uc := NewExtractionUseCase(extractor, nil)

		extractor.EXPECT().ExtractOrder(gomock.Any(), []byte("fake-jpeg"), "image/jpeg").
			Return(&entities.ExtractedOrderData{CustomerName: "Ana"}, nil)

		got, err := uc.Extract(context.Background(), jpegDataURI)
		if err != nil || got.CustomerName != "Ana" {
			t.Fatalf("unexpected result: %+v %v", got, err)
		}
	})

	t.Run("accepts bare base64", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		extractor := mock_interfaces.NewMockIOrderExtractor(ctrl)
		uc := NewExtractionUseCase(extractor, nil)

		extractor.EXPECT().ExtractOrder(gomock.Any(), []byte("fake-jpeg"), "image/jpeg").Return(&entities.ExtractedOrderData{}, nil)

		got, err := uc.Extract(context.Background(), base64.StdEncoding.EncodeToString([]byte("fake-jpeg")))
		if err != nil || got.CustomerName != "" || len(got.Services) != 0 {
			t.Fatalf("expected valid empty result, got %+v %v", got, err)
		}
	})

	t.Run("invalid base64", func(t *testing.T) {
		uc := NewExtractionUseCase(nil, nil)
		if _, err := uc.Extract(context.Background(), "data:image/jpeg;base64,@@@"); !errors.Is(err, ErrNothingExtracted) {
			t.Fatalf("expected ErrNothingExtracted, got %v", err)
		}
	})

	t.Run("extractor failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		extractor := mock_interfaces.NewMockIOrderExtractor(ctrl)
		uc := NewExtractionUseCase(extractor, nil)

		extractor.EXPECT().ExtractOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("quota"))
		if _, err := uc.Extract(context.Background(), jpegDataURI); !errors.Is(err, ErrNothingExtracted) {
			t.Fatalf("expected ErrNothingExtracted, got %v", err)
		}
	})

	t.Run("nil result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		extractor := mock_interfaces.NewMockIOrderExtractor(ctrl)
		uc := NewExtractionUseCase(extractor, nil)

		extractor.EXPECT().ExtractOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		if _, err := uc.Extract(context.Background(), jpegDataURI); !errors.Is(err, ErrNothingExtracted) {
			t.Fatalf("expected ErrNothingExtracted, got %v", err)
		}
	})
}

func TestExtractionUseCase_ExtractIntoOrder(t *testing.T) {
	t.Run("merges and keeps the photo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		extractor := mock_interfaces.NewMockIOrderExtractor(ctrl)
		repo, stored := storedOrderRepo(ctrl, sampleOrder("os-1", "João", entities.OrderStatusPendente))
		cache, _ := memCache(ctrl, nil)
		uc := NewExtractionUseCase(extractor, NewOrderUseCase(repo, cache))

		extractor.EXPECT().ExtractOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(&entities.ExtractedOrderData{
			CustomerName: "Ana",
			Model:        "Jazz Bass",
			Services:     []entities.ExtractedService{{Description: "Nivelamento", Price: 350}},
		}, nil)

		o, data, err := uc.ExtractIntoOrder(context.Background(), "os-1", jpegDataURI)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data.CustomerName != "Ana" || o.Customer.Name != "João" {
			t.Fatalf("user data must win: %+v", o.Customer)
		}
		if len(stored.Services) != 1 || stored.Notes != "Modelo: Jazz Bass" {
			t.Fatalf("unexpected stored order: %+v", *stored)
		}
		if len(stored.HandwrittenNoteImages) != 1 || stored.HandwrittenNoteImages[0] != jpegDataURI {
			t.Fatalf("expected photo attached, got %v", stored.HandwrittenNoteImages)
		}
	})

	t.Run("nothing extracted leaves the order alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		extractor := mock_interfaces.NewMockIOrderExtractor(ctrl)
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewExtractionUseCase(extractor, NewOrderUseCase(repo, nil))

		extractor.EXPECT().ExtractOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("unreadable"))
		if _, _, err := uc.ExtractIntoOrder(context.Background(), "os-1", jpegDataURI); !errors.Is(err, ErrNothingExtracted) {
			t.Fatalf("expected ErrNothingExtracted, got %v", err)
		}
	})

	t.Run("invalid order id", func(t *testing.T) {
		uc := NewExtractionUseCase(nil, nil)
		if _, _, err := uc.ExtractIntoOrder(context.Background(), "", jpegDataURI); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})
}
