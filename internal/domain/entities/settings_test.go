package entities

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if len(s.InstrumentTypes) != 8 || len(s.Brands) != 8 || len(s.PredefinedServices) != 6 || len(s.Luthiers) != 1 {
		t.Fatalf("unexpected seed sizes: %d %d %d %d", len(s.InstrumentTypes), len(s.Brands), len(s.PredefinedServices), len(s.Luthiers))
	}

	s.Brands[0] = "changed"
	if DefaultSettings().Brands[0] != "Fender" {
		t.Fatalf("expected a fresh copy on every call")
	}
}

func TestResolveLuthier(t *testing.T) {
	s := DefaultSettings()

	l, ok := s.ResolveLuthier("1")
	if !ok || l.Name != "Luthier Principal" {
		t.Fatalf("expected luthier, got %+v %v", l, ok)
	}
	if _, ok := s.ResolveLuthier("removed-luthier"); ok {
		t.Fatalf("dangling id must resolve as unassigned")
	}
	if _, ok := s.ResolveLuthier(""); ok {
		t.Fatalf("empty id must resolve as unassigned")
	}
}

func TestPredefinedServiceLookup(t *testing.T) {
	s := DefaultSettings()
	p, ok := s.PredefinedService(1)
	if !ok || p.Description != "Troca de Cordas" || p.Price != 50 {
		t.Fatalf("unexpected template: %+v", p)
	}
	if _, ok := s.PredefinedService(6); ok {
		t.Fatalf("expected miss")
	}
}

func TestSettingsIsZero(t *testing.T) {
	if !(AppSettings{}).IsZero() {
		t.Fatalf("expected zero settings")
	}
	if DefaultSettings().IsZero() {
		t.Fatalf("seed is not zero")
	}
}
