package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config is loaded once at startup and passed to the components that need it.
//
// Precedence: explicit env var > .env file (autoloaded in main) > default.
type Config struct {
	Port string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	OrdersTable        string
	SettingsTable      string

	// CacheDSN is the SQLite file holding the local order snapshot.
	CacheDSN   string
	CacheDebug bool

	GeminiAPIKey   string
	GeminiModel    string
	ExtractionMock bool

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	// Sandbox payer used when a charge request carries no payer.
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		OrdersTable:        getEnv("ORDERS_TABLE", "orders"),
		SettingsTable:      getEnv("SETTINGS_TABLE", "settings"),

		CacheDSN:   getEnv("ORDER_CACHE_DSN", "luthierflow_cache.db"),
		CacheDebug: parseFlag("DB_DEBUG"),

		GeminiAPIKey:   firstEnv("GEMINI_API_KEY", "API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		ExtractionMock: parseFlag("EXTRACTION_MOCK"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     parseFlag("PAYMENT_GATEWAY_MOCK") || parseFlag("MERCADOPAGO_MOCK"),

		MercadoPagoTestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		MercadoPagoTestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

// parseFlag accepts the loose truthy values used across deploy scripts.
func parseFlag(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "", "0", "false", "no", "off":
		return false
	case "1", "true", "yes", "on", "mock":
		return true
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	log.Printf("[config] invalid boolean for %s: %s", key, v)
	return false
}
