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
		"pool": map[string]any{
			"acquireTimeout": "30s",
			"maxOverflow":    10,
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"search": map[string]any{
			"defaultPageSize": 10,
			"maxPageSize":     100,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "POOL_ACQUIRETIMEOUT", want: "pool.acquireTimeout"},
		{envKey: "POOL_MAX_OVERFLOW", want: "pool.max.overflow"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SEARCH_MAXPAGESIZE", want: "search.maxPageSize"},
		{envKey: "SEARCH_DEFAULTPAGESIZE", want: "search.defaultPageSize"},
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
