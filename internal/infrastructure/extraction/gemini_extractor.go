package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"luthierflow/internal/config"
	"luthierflow/internal/domain/entities"

	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrGeminiExtractorNotConfigured = errors.New("gemini extractor not configured")

const extractionPrompt = "Extraia informações desta nota de serviço de luthieria escrita à mão. " +
	"Retorne os dados como JSON estruturado incluindo nome do cliente, contato, tipo de instrumento, marca, modelo, " +
	"lista de serviços com preços e quaisquer observações adicionais. " +
	"Se um campo não for encontrado, deixe-o nulo ou vazio. Responda em Português do Brasil."

type GeminiExtractor struct {
	client   *genai.Client
	model    string
	mockMode bool
}

// NewGeminiExtractor builds the handwritten note reader. In mock mode a fixed
// extraction is returned and the API is never called.
func NewGeminiExtractor(ctx context.Context, cfg config.Config) (*GeminiExtractor, error) {
	if cfg.ExtractionMock {
		log.Printf("[extraction][gateway] mock mode enabled")
		return &GeminiExtractor{mockMode: true}, nil
	}
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		log.Printf("[extraction][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("[extraction][gateway] failed creating genai client err=%v", err)
		return nil, err
	}
	log.Printf("[extraction][gateway] Gemini client initialized model=%s", cfg.GeminiModel)

	return &GeminiExtractor{client: client, model: cfg.GeminiModel}, nil
}

func (g *GeminiExtractor) ExtractOrder(ctx context.Context, image []byte, mimeType string) (*entities.ExtractedOrderData, error) {
	if g != nil && g.mockMode {
		log.Printf("[extraction][gateway] mock extract image_len=%d", len(image))
		return mockExtraction(), nil
	}
	if g == nil || g.client == nil {
		log.Printf("[extraction][gateway] extractor not configured")
		return nil, ErrGeminiExtractorNotConfigured
	}
	log.Printf("[extraction][gateway] extract start model=%s image_len=%d", g.model, len(image))

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(extractionPrompt),
		}, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   extractionSchema(),
	})
	if err != nil {
		log.Printf("[extraction][gateway] generate content failed err=%v", err)
		return nil, err
	}

	data, err := parseExtraction(resp.Text())
	if err != nil {
		log.Printf("[extraction][gateway] response parse failed err=%v", err)
		return nil, err
	}
	if data == nil {
		log.Printf("[extraction][gateway] empty response")
		return nil, nil
	}
	log.Printf("[extraction][gateway] extract success services=%d", len(data.Services))
	return data, nil
}

// parseExtraction decodes the model answer. An empty answer is nil, not an
// error.
func parseExtraction(text string) (*entities.ExtractedOrderData, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" || text == "null" {
		return nil, nil
	}

	var data entities.ExtractedOrderData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func extractionSchema() *genai.Schema {
	str := &genai.Schema{Type: genai.TypeString}
	num := &genai.Schema{Type: genai.TypeNumber}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"customerName":   str,
			"contact":        str,
			"instrumentType": str,
			"brand":          str,
			"model":          str,
			"services": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"description": str,
						"price":       num,
					},
				},
			},
			"totalPrice": num,
			"notes":      str,
		},
	}
}

func mockExtraction() *entities.ExtractedOrderData {
	total := entities.Amount(230)
	return &entities.ExtractedOrderData{
		CustomerName:   "Cliente Exemplo",
		Contact:        "(11) 99999-0000",
		InstrumentType: "Violão Aço",
		Brand:          "Yamaha",
		Model:          "FG800",
		Services: []entities.ExtractedService{
			{Description: "Regulagem Completa", Price: 180},
			{Description: "Troca de Cordas", Price: 50},
		},
		TotalPrice: &total,
		Notes:      "Nota lida em modo de teste",
	}
}
