package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"strings"

	"luthierflow/internal/domain/entities"
	"luthierflow/internal/usecase/interfaces"
)

// ErrNothingExtracted means the photo could not be read. Callers keep the
// draft as it is.
var ErrNothingExtracted = errors.New("nothing could be extracted from the image")

const defaultImageMIMEType = "image/jpeg"

type IExtractionUseCase interface {
	Extract(ctx context.Context, dataURI string) (entities.ExtractedOrderData, error)
	ExtractIntoOrder(ctx context.Context, orderID string, dataURI string) (entities.ServiceOrder, entities.ExtractedOrderData, error)
}

// extractionApplier stores the merge of an extraction into an order.
type extractionApplier interface {
	ApplyExtraction(ctx context.Context, id string, data entities.ExtractedOrderData, dataURI string) (entities.ServiceOrder, error)
}

type ExtractionUseCase struct {
	extractor interfaces.IOrderExtractor
	orders    extractionApplier
}

var _ IExtractionUseCase = (*ExtractionUseCase)(nil)

func NewExtractionUseCase(extractor interfaces.IOrderExtractor, orders extractionApplier) *ExtractionUseCase {
	return &ExtractionUseCase{extractor: extractor, orders: orders}
}

// Extract reads a photographed note given as a data URI or bare base64.
// Any failure is reported as ErrNothingExtracted; an object with no fields
// set is a valid, empty result.
func (u *ExtractionUseCase) Extract(ctx context.Context, dataURI string) (entities.ExtractedOrderData, error) {
	img, mimeType, err := decodeDataURI(dataURI)
	if err != nil {
		log.Printf("[extraction][usecase] invalid image err=%v", err)
		return entities.ExtractedOrderData{}, ErrNothingExtracted
	}
	if u.extractor == nil {
		log.Printf("[extraction][usecase] extractor not configured")
		return entities.ExtractedOrderData{}, ErrNothingExtracted
	}

	log.Printf("[extraction][usecase] extract start image_len=%d mime=%s", len(img), mimeType)
	data, err := u.extractor.ExtractOrder(ctx, img, mimeType)
	if err != nil {
		log.Printf("[extraction][usecase] extractor failed err=%v", err)
		return entities.ExtractedOrderData{}, ErrNothingExtracted
	}
	if data == nil {
		log.Printf("[extraction][usecase] extractor returned nothing")
		return entities.ExtractedOrderData{}, ErrNothingExtracted
	}
	log.Printf("[extraction][usecase] extract success services=%d", len(data.Services))
	return *data, nil
}

// ExtractIntoOrder extracts the note and merges it into a stored order,
// keeping the photo among the order's note images.
func (u *ExtractionUseCase) ExtractIntoOrder(ctx context.Context, orderID string, dataURI string) (entities.ServiceOrder, entities.ExtractedOrderData, error) {
	if strings.TrimSpace(orderID) == "" {
		return entities.ServiceOrder{}, entities.ExtractedOrderData{}, ErrInvalidOrderID
	}
	data, err := u.Extract(ctx, dataURI)
	if err != nil {
		return entities.ServiceOrder{}, entities.ExtractedOrderData{}, err
	}

	o, err := u.orders.ApplyExtraction(ctx, orderID, data, ensureDataURI(dataURI))
	if err != nil {
		log.Printf("[extraction][usecase] merge failed order_id=%s err=%v", orderID, err)
		return entities.ServiceOrder{}, data, err
	}
	return o, data, nil
}

// decodeDataURI strips an optional "data:<mime>;base64," prefix.
func decodeDataURI(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, "", errors.New("empty image")
	}

	mimeType := defaultImageMIMEType
	if strings.HasPrefix(s, "data:") {
		comma := strings.Index(s, ",")
		if comma < 0 {
			return nil, "", errors.New("malformed data uri")
		}
		header := strings.TrimPrefix(s[:comma], "data:")
		if m, _, ok := strings.Cut(header, ";"); ok && m != "" {
			mimeType = m
		}
		s = s[comma+1:]
	}

	img, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, "", err
	}
	if len(img) == 0 {
		return nil, "", errors.New("empty image")
	}
	return img, mimeType, nil
}

func ensureDataURI(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		return s
	}
	return "data:" + defaultImageMIMEType + ";base64," + s
}
