package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"SALARYOT_BACKEND", "SALARYOT_DB_PATH", "SALARYOT_EXPORT_DIR", "SALARYOT_SYNC_DELAY", "LOG_LEVEL", "LOG_FILE"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()

	if cfg.Backend != "sqlite" {
		t.Fatalf("expected sqlite backend, got %s", cfg.Backend)
	}
	if filepath.Base(cfg.DBPath) != "salaryot.db" {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
	if cfg.SyncDelay != 600*time.Millisecond {
		t.Fatalf("expected 600ms sync delay, got %v", cfg.SyncDelay)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected info level, got %s", cfg.LogLevel)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SALARYOT_BACKEND", "memory")
	t.Setenv("SALARYOT_SYNC_DELAY", "2s")
	t.Setenv("SALARYOT_EXPORT_DIR", "/tmp/exports")
	t.Setenv("LOG_FILE", "-")

	cfg := FromEnv()
	if cfg.Backend != "memory" || cfg.SyncDelay != 2*time.Second || cfg.ExportDir != "/tmp/exports" || cfg.LogFile != "-" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestFromEnvBadDurationFallsBack(t *testing.T) {
	t.Setenv("SALARYOT_SYNC_DELAY", "soon")
	if got := FromEnv().SyncDelay; got != 600*time.Millisecond {
		t.Fatalf("expected default delay, got %v", got)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SALARYOT_BACKEND=memory\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	t.Setenv("SALARYOT_BACKEND", "")
	os.Unsetenv("SALARYOT_BACKEND")

	if got := Load().Backend; got != "memory" {
		t.Fatalf("expected backend from .env, got %s", got)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Backend:   "sqlite",
			DBPath:    filepath.Join(t.TempDir(), "x.db"),
			ExportDir: t.TempDir(),
			SyncDelay: 600 * time.Millisecond,
			LogLevel:  "info",
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	file := filepath.Join(t.TempDir(), "file")
	os.WriteFile(file, nil, 0o644)

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad backend", func(c *Config) { c.Backend = "sheets" }, "invalid backend"},
		{"empty db path", func(c *Config) { c.DBPath = "" }, "database path"},
		{"empty export dir", func(c *Config) { c.ExportDir = "" }, "export directory"},
		{"export dir is file", func(c *Config) { c.ExportDir = file }, "not a directory"},
		{"negative delay", func(c *Config) { c.SyncDelay = -time.Second }, "sync delay"},
		{"huge delay", func(c *Config) { c.SyncDelay = time.Minute }, "at most 10 seconds"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, err.Error())
			}
			if !strings.HasPrefix(err.Error(), "configuration validation failed:") {
				t.Fatalf("unexpected error format %q", err.Error())
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	c := &Config{Backend: "nope", SyncDelay: -1, LogLevel: "loud"}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if n := strings.Count(err.Error(), "\n- "); n != 4 {
		t.Fatalf("expected 4 problems, got %d in %q", n, err.Error())
	}
}
