package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CERTRUN_ADDR",
		"CERTRUN_DB",
		"CERTRUN_CORS_ORIGINS",
		"CERTRUN_SESSION_SIZE",
		"LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.SessionSize != 0 {
		t.Errorf("SessionSize = %d, want 0", cfg.SessionSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CERTRUN_ADDR", "127.0.0.1:9999")
	t.Setenv("CERTRUN_DB", "/tmp/certrun-test.db")
	t.Setenv("CERTRUN_CORS_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("CERTRUN_SESSION_SIZE", "10")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/certrun-test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	want := []string{"https://app.example.com", "https://staging.example.com"}
	if len(cfg.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
	for i, o := range want {
		if cfg.CORSOrigins[i] != o {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.CORSOrigins[i], o)
		}
	}
	if cfg.SessionSize != 10 {
		t.Errorf("SessionSize = %d, want 10", cfg.SessionSize)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestFromEnvRejectsBadSessionSize(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3", "2.5"} {
		t.Run(raw, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("CERTRUN_SESSION_SIZE", raw)

			_, err := FromEnv()
			if err == nil {
				t.Fatalf("FromEnv accepted CERTRUN_SESSION_SIZE=%q", raw)
			}
			if !strings.Contains(err.Error(), "CERTRUN_SESSION_SIZE") {
				t.Errorf("error %q does not name the variable", err)
			}
		})
	}
}

func TestFromEnvKeepsDefaultOriginsForBlankList(t *testing.T) {
	clearEnv(t)
	t.Setenv("CERTRUN_CORS_ORIGINS", " , ,")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
}

func TestSplitOrigins(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"https://a.test", []string{"https://a.test"}},
		{"https://a.test,https://b.test", []string{"https://a.test", "https://b.test"}},
		{" https://a.test ,, https://b.test ", []string{"https://a.test", "https://b.test"}},
		{",,", nil},
	}
	for _, tc := range cases {
		got := splitOrigins(tc.raw)
		if len(got) != len(tc.want) {
			t.Errorf("splitOrigins(%q) = %v, want %v", tc.raw, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("splitOrigins(%q)[%d] = %q, want %q", tc.raw, i, got[i], tc.want[i])
			}
		}
	}
}
