package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "ORDERS_TABLE", "SETTINGS_TABLE", "ORDER_CACHE_DSN", "DB_DEBUG", "GEMINI_API_KEY", "API_KEY", "EXTRACTION_MOCK", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.OrdersTable != "orders" || cfg.SettingsTable != "settings" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ExtractionMock || cfg.PaymentGatewayMock {
		t.Fatalf("mocks must be off by default")
	}
	if cfg.CacheDSN != "luthierflow_cache.db" || cfg.CacheDebug {
		t.Fatalf("unexpected cache defaults: %q %v", cfg.CacheDSN, cfg.CacheDebug)
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatalf("expected empty api key")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ORDERS_TABLE", "os")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("EXTRACTION_MOCK", "mock")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("ORDER_CACHE_DSN", "file::memory:")
	t.Setenv("DB_DEBUG", "1")

	cfg := Load()
	if cfg.Port != "9090" || cfg.OrdersTable != "os" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.GeminiAPIKey != "legacy-key" {
		t.Fatalf("expected fallback to API_KEY, got %q", cfg.GeminiAPIKey)
	}
	if !cfg.ExtractionMock || !cfg.PaymentGatewayMock {
		t.Fatalf("expected mocks enabled")
	}
	if cfg.CacheDSN != "file::memory:" || !cfg.CacheDebug {
		t.Fatalf("unexpected cache overrides: %q %v", cfg.CacheDSN, cfg.CacheDebug)
	}
}

func TestParseFlag_Invalid(t *testing.T) {
	t.Setenv("SOME_FLAG", "maybe")
	if parseFlag("SOME_FLAG") {
		t.Fatalf("invalid flag must be false")
	}
}
