package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	version, dirty, err := s.SchemaVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 2 {
		t.Fatalf("expected schema version 2, got %d", version)
	}
	if dirty {
		t.Fatal("schema should not be dirty")
	}
}

func TestNewWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "salaryot.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := s.SaveDocument(ctx, "5550001111", KindSettings, []byte(`{"monthlySalary":1}`)); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: migrations are already applied and data survives.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	got, err := s2.LoadDocument(ctx, "5550001111", KindSettings)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"monthlySalary":1}` {
		t.Fatalf("unexpected payload %s", got)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "salaryot.db" {
		t.Fatalf("unexpected path %s", path)
	}
}

func TestPragmasConfigured(t *testing.T) {
	s := newTestStore(t)

	var fk int
	s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk)
	if fk != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fk)
	}

	var timeout int
	s.db.QueryRow("PRAGMA busy_timeout").Scan(&timeout)
	if timeout != 5000 {
		t.Fatalf("expected busy_timeout=5000, got %d", timeout)
	}
}

// ============================================================
// Documents
// ============================================================

func TestSaveAndLoadDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveDocument(ctx, "100", KindRecords, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveDocument(ctx, "100", KindRecords, []byte(`{"2024-03-01":{"status":"PRESENT"}}`)); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadDocument(ctx, "100", KindRecords)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"2024-03-01":{"status":"PRESENT"}}` {
		t.Fatalf("expected overwritten payload, got %s", got)
	}
}

func TestLoadDocumentNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.LoadDocument(context.Background(), "nobody", KindSettings)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDocumentsIsolatedByIdentity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SaveDocument(ctx, "111", KindSettings, []byte(`"a"`))
	s.SaveDocument(ctx, "222", KindSettings, []byte(`"b"`))

	a, _ := s.LoadDocument(ctx, "111", KindSettings)
	b, _ := s.LoadDocument(ctx, "222", KindSettings)
	if string(a) != `"a"` || string(b) != `"b"` {
		t.Fatalf("documents leaked between identities: %s %s", a, b)
	}
}

func TestDocumentKindConstraint(t *testing.T) {
	s := newTestStore(t)
	err := s.SaveDocument(context.Background(), "111", Kind("avatar"), []byte(`{}`))
	if err == nil {
		t.Fatal("expected check constraint error for unknown kind")
	}
}

func TestDeleteIdentity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SaveDocument(ctx, "111", KindSettings, []byte(`{}`))
	s.SaveDocument(ctx, "111", KindRecords, []byte(`{}`))
	s.SaveDocument(ctx, "222", KindRecords, []byte(`{}`))

	if err := s.DeleteIdentity(ctx, "111"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadDocument(ctx, "111", KindRecords); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := s.LoadDocument(ctx, "222", KindRecords); err != nil {
		t.Fatalf("other identity should survive: %v", err)
	}
}

func TestListDocumentsAndIdentities(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SaveDocument(ctx, "222", KindSettings, []byte(`{}`))
	s.SaveDocument(ctx, "111", KindSettings, []byte(`{}`))
	s.SaveDocument(ctx, "111", KindRecords, []byte(`{}`))

	docs, err := s.ListDocuments(ctx, "111")
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Kind != KindRecords || docs[1].Kind != KindSettings {
		t.Fatalf("unexpected order %s, %s", docs[0].Kind, docs[1].Kind)
	}
	if docs[0].UpdatedAt.IsZero() {
		t.Fatal("updated_at should be set")
	}

	ids, err := s.ListIdentities(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "111" || ids[1] != "222" {
		t.Fatalf("unexpected identities %v", ids)
	}
}

func TestListDocumentsBadTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (identity, kind, payload, updated_at) VALUES (?, ?, ?, ?)`,
		"111", string(KindSettings), `{}`, "yesterday")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.ListDocuments(ctx, "111"); err == nil {
		t.Fatal("expected error for unparseable updated_at")
	}
}

func TestListDocumentsEmpty(t *testing.T) {
	s := newTestStore(t)
	docs, err := s.ListDocuments(context.Background(), "111")
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
}

// ============================================================
// App settings
// ============================================================

func TestSetAndGetSetting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SetSetting(ctx, SettingCurrentIdentity, "5550001111"); err != nil {
		t.Fatal(err)
	}
	v, err := s.GetSetting(ctx, SettingCurrentIdentity)
	if err != nil {
		t.Fatal(err)
	}
	if v != "5550001111" {
		t.Fatalf("expected 5550001111, got %s", v)
	}
}

func TestSetSettingOverwrite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SetSetting(ctx, SettingStorageAuthorized, "false")
	s.SetSetting(ctx, SettingStorageAuthorized, "true")
	v, _ := s.GetSetting(ctx, SettingStorageAuthorized)
	if v != "true" {
		t.Fatalf("expected true, got %s", v)
	}
}

func TestGetSettingNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetSetting(context.Background(), "nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteSetting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.SetSetting(ctx, SettingCurrentIdentity, "111")
	if err := s.DeleteSetting(ctx, SettingCurrentIdentity); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetSetting(ctx, SettingCurrentIdentity); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// Deleting a missing key is not an error.
	if err := s.DeleteSetting(ctx, SettingCurrentIdentity); err != nil {
		t.Fatal(err)
	}
}

func TestCloseStore(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
}
