package request

// ExtractionRequest carries a photographed handwritten note as a data URI
// ("data:image/jpeg;base64,...") or bare base64.
type ExtractionRequest struct {
	Image string `json:"image" binding:"required"`
}
