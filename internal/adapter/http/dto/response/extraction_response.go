package response

import "luthierflow/internal/domain/entities"

// ExtractionResponse carries the extracted hints and, when the extraction
// was merged into a stored order, the updated order.
type ExtractionResponse struct {
	Extraction entities.ExtractedOrderData `json:"extraction"`
	Order      *OrderResponse              `json:"order,omitempty"`
}
