package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"dataPath":         "./data",
			"operationTimeout": "15s",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_DATAPATH", want: "storage.dataPath"},
		{envKey: "STORAGE_OPERATIONTIMEOUT", want: "storage.operationTimeout"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Storage.Provider != defaultProvider {
		t.Fatalf("Storage.Provider = %q, want %q", cfg.Storage.Provider, defaultProvider)
	}
	if cfg.Storage.OperationTimeout != defaultOperationTimeout {
		t.Fatalf("Storage.OperationTimeout = %v, want %v", cfg.Storage.OperationTimeout, defaultOperationTimeout)
	}
	if cfg.Photo.MaxUploadBytes != defaultMaxUploadBytes {
		t.Fatalf("Photo.MaxUploadBytes = %d, want %d", cfg.Photo.MaxUploadBytes, defaultMaxUploadBytes)
	}
	if cfg.Auth == nil || cfg.Auth.TokenTTL != defaultTokenTTL {
		t.Fatalf("Auth defaults not applied: %+v", cfg.Auth)
	}
}
