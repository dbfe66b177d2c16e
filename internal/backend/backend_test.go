package backend

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	applog "github.com/RSABuilds/Salary-OT-Calculator/internal/log"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/store"
)

func TestTypeIsValid(t *testing.T) {
	tests := []struct {
		in   Type
		want bool
	}{
		{Memory, true},
		{SQLite, true},
		{"sheets", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.in.IsValid(); got != tt.want {
			t.Errorf("Type(%q).IsValid() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewMemory(t *testing.T) {
	res, err := New(Config{Type: Memory}, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Cleanup()

	ctx := context.Background()
	if err := res.Repository.SetSetting(ctx, store.SettingCurrentIdentity, "111"); err != nil {
		t.Fatal(err)
	}
	v, err := res.Repository.GetSetting(ctx, store.SettingCurrentIdentity)
	if err != nil || v != "111" {
		t.Fatalf("expected 111, got %q (%v)", v, err)
	}
}

func TestNewSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "salaryot.db")
	res, err := New(Config{Type: SQLite, DBPath: path}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := res.Cleanup(); err != nil {
		t.Fatal(err)
	}
}

func TestNewSQLiteLogsSchemaVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := applog.New(applog.Config{Handler: slog.NewTextHandler(&buf, nil)})

	path := filepath.Join(t.TempDir(), "salaryot.db")
	res, err := New(Config{Type: SQLite, DBPath: path}, logger)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Cleanup()

	if !strings.Contains(buf.String(), "schema_version=2") {
		t.Fatalf("expected schema version in log, got %q", buf.String())
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(Config{Type: SQLite}, nil); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := New(Config{Type: "sheets"}, nil); err == nil {
		t.Fatal("expected error for unknown type")
	}
}
