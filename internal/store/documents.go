package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// LoadDocument returns the payload stored for identity and kind, or
// ErrNotFound.
func (s *Store) LoadDocument(ctx context.Context, identity string, kind Kind) ([]byte, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM documents WHERE identity = ? AND kind = ?`,
		identity, string(kind),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %s for %q: %w", kind, identity, err)
	}
	return []byte(payload), nil
}

// SaveDocument stores payload for identity and kind, replacing any previous one.
func (s *Store) SaveDocument(ctx context.Context, identity string, kind Kind, payload []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (identity, kind, payload, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(identity, kind) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		identity, string(kind), string(payload), now,
	)
	if err != nil {
		return fmt.Errorf("save %s for %q: %w", kind, identity, err)
	}
	return nil
}

// DeleteIdentity removes every document of identity.
func (s *Store) DeleteIdentity(ctx context.Context, identity string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE identity = ?`, identity); err != nil {
		return fmt.Errorf("delete documents for %q: %w", identity, err)
	}
	return nil
}

// ListDocuments returns the documents of identity ordered by kind.
func (s *Store) ListDocuments(ctx context.Context, identity string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT identity, kind, payload, updated_at FROM documents WHERE identity = ? ORDER BY kind`,
		identity,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			d                  Document
			kind, payload, upd string
		)
		if err := rows.Scan(&d.Identity, &kind, &payload, &upd); err != nil {
			return nil, err
		}
		d.Kind = Kind(kind)
		d.Payload = []byte(payload)
		d.UpdatedAt, err = time.Parse(time.RFC3339, upd)
		if err != nil {
			return nil, fmt.Errorf("list documents: %s updated_at: %w", kind, err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// ListIdentities returns every identity with at least one stored document.
func (s *Store) ListIdentities(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT identity FROM documents ORDER BY identity`)
	if err != nil {
		return nil, fmt.Errorf("list identities: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
