package interfaces

import (
	"context"

	"luthierflow/internal/domain/entities"
)

// IOrderExtractor reads a photographed handwritten note with an AI model.
//
// A nil result means nothing could be extracted. Results are hints only.
type IOrderExtractor interface {
	ExtractOrder(ctx context.Context, image []byte, mimeType string) (*entities.ExtractedOrderData, error)
}
