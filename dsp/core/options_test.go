package core

import "testing"

func TestApplySamplingOptions(t *testing.T) {
	cfg := ApplySamplingOptions()
	if cfg.Resolution != 1024 || !cfg.Endpoint {
		t.Fatalf("default config = %+v", cfg)
	}

	cfg = ApplySamplingOptions(WithResolution(128), WithEndpoint(false))
	if cfg.Resolution != 128 {
		t.Fatalf("Resolution = %d, want 128", cfg.Resolution)
	}
	if cfg.Endpoint {
		t.Fatal("Endpoint = true, want false")
	}
}

func TestWithResolutionIgnoresNonPositive(t *testing.T) {
	cfg := ApplySamplingOptions(WithResolution(0), WithResolution(-3), nil)
	if cfg.Resolution != 1024 {
		t.Fatalf("Resolution = %d, want 1024", cfg.Resolution)
	}
}
