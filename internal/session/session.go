// Package session ties the record store and the salary settings of the
// signed-in user to a persistent repository.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	applog "github.com/RSABuilds/Salary-OT-Calculator/internal/log"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/payroll"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/records"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/store"
)

var (
	ErrNotLoggedIn          = errors.New("no user is logged in")
	ErrStorageNotAuthorized = errors.New("local storage has not been authorized")
)

// Repository persists per-identity documents and app-wide settings.
// *store.Store satisfies it.
type Repository interface {
	LoadDocument(ctx context.Context, identity string, kind store.Kind) ([]byte, error)
	SaveDocument(ctx context.Context, identity string, kind store.Kind, payload []byte) error
	DeleteIdentity(ctx context.Context, identity string) error
	ListDocuments(ctx context.Context, identity string) ([]store.Document, error)
	ListIdentities(ctx context.Context) ([]string, error)
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// SyncStatus is the state shown by the sync indicator.
type SyncStatus int

const (
	SyncIdle SyncStatus = iota
	SyncSyncing
	SyncSynced
	SyncError
)

func (s SyncStatus) String() string {
	switch s {
	case SyncSyncing:
		return "syncing"
	case SyncSynced:
		return "synced"
	case SyncError:
		return "error"
	}
	return "idle"
}

// Session is the state of the running application for one user at a time.
// It is safe for concurrent use.
type Session struct {
	repo    Repository
	records *records.Store
	logger  *applog.Logger
	now     func() time.Time

	mu         sync.RWMutex
	settings   payroll.Settings
	authorized bool
	syncStatus SyncStatus
}

type Option func(*Session)

// WithClock overrides the time source used for lastSyncedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(repo Repository, logger *applog.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = applog.Discard()
	}
	s := &Session{
		repo:     repo,
		records:  records.New(),
		logger:   logger.WithComponent(applog.ComponentSession),
		now:      time.Now,
		settings: payroll.DefaultSettings(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open restores the consent flag and the last signed-in user, if any.
func (s *Session) Open(ctx context.Context) error {
	auth, err := s.repo.GetSetting(ctx, store.SettingStorageAuthorized)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("open session: %w", err)
	}

	id, err := s.repo.GetSetting(ctx, store.SettingCurrentIdentity)
	if errors.Is(err, store.ErrNotFound) || (err == nil && id == "") {
		s.mu.Lock()
		s.authorized = auth == "true"
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	settings, recs, err := s.load(ctx, id)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	settings.MobileNumber = id
	settings.IsLoggedIn = true

	s.records.Replace(recs)
	s.mu.Lock()
	s.authorized = auth == "true"
	s.settings = settings
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "session restored", applog.NewFields().
		WithOperation(applog.OpHydrate).
		WithIdentity(id).
		ToSlice()...)
	return nil
}

// load reads both documents of identity concurrently. Missing or corrupt
// documents fall back to defaults.
func (s *Session) load(ctx context.Context, identity string) (payroll.Settings, payroll.Records, error) {
	settings := payroll.DefaultSettings()
	recs := make(payroll.Records)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := s.repo.LoadDocument(gctx, identity, store.KindSettings)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		decoded, err := payroll.DecodeSettings(data)
		if err != nil {
			s.logger.WarnContext(gctx, "settings document unreadable, using defaults",
				applog.FieldIdentity, applog.MaskIdentity(identity), applog.FieldError, err)
			return nil
		}
		settings = decoded
		return nil
	})
	g.Go(func() error {
		data, err := s.repo.LoadDocument(gctx, identity, store.KindRecords)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		decoded, err := payroll.DecodeRecords(data)
		if err != nil {
			s.logger.WarnContext(gctx, "records document unreadable, starting empty",
				applog.FieldIdentity, applog.MaskIdentity(identity), applog.FieldError, err)
			return nil
		}
		recs = decoded
		return nil
	})
	if err := g.Wait(); err != nil {
		return payroll.Settings{}, nil, fmt.Errorf("load %s: %w", applog.MaskIdentity(identity), err)
	}
	return settings, recs, nil
}

// Settings returns a copy of the current settings.
func (s *Session) Settings() payroll.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSettings(s.settings)
}

func cloneSettings(st payroll.Settings) payroll.Settings {
	st.OffDays = slices.Clone(st.OffDays)
	if st.LastSyncedAt != nil {
		t := *st.LastSyncedAt
		st.LastSyncedAt = &t
	}
	return st
}

func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.IsLoggedIn
}

// Identity returns the mobile number of the signed-in user, or "".
func (s *Session) Identity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.MobileNumber
}

func (s *Session) Authorized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authorized
}

func (s *Session) SyncStatus() SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.syncStatus
}

// MarkSynced completes a pending sync indicator.
func (s *Session) MarkSynced() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.syncStatus == SyncSyncing {
		s.syncStatus = SyncSynced
	}
}

// Authorize records the user's consent to keep data on this device and
// saves the current state.
func (s *Session) Authorize(ctx context.Context) error {
	if err := s.repo.SetSetting(ctx, store.SettingStorageAuthorized, "true"); err != nil {
		return fmt.Errorf("authorize storage: %w", err)
	}
	s.mu.Lock()
	s.authorized = true
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "storage authorized", applog.FieldOperation, applog.OpAuthorize)
	return s.autosave(ctx)
}

// StoredDocuments lists what is saved on disk for the signed-in user.
func (s *Session) StoredDocuments(ctx context.Context) ([]store.Document, error) {
	id := s.Identity()
	if id == "" {
		return nil, ErrNotLoggedIn
	}
	docs, err := s.repo.ListDocuments(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("stored documents: %w", err)
	}
	return docs, nil
}

// Persist writes the settings, stamped with the sync time, and the records
// of the signed-in user.
func (s *Session) Persist(ctx context.Context) error {
	s.mu.Lock()
	if !s.settings.IsLoggedIn || s.settings.MobileNumber == "" {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	if !s.authorized {
		s.mu.Unlock()
		return ErrStorageNotAuthorized
	}
	now := s.now().UTC()
	s.settings.LastSyncedAt = &now
	if s.settings.SyncEnabled {
		s.syncStatus = SyncSyncing
	}
	settings := cloneSettings(s.settings)
	s.mu.Unlock()

	id := settings.MobileNumber
	err := s.save(ctx, id, settings)
	if err != nil {
		s.mu.Lock()
		s.syncStatus = SyncError
		s.mu.Unlock()
		s.logger.ErrorContext(ctx, "persist failed", applog.NewFields().
			WithOperation(applog.OpPersist).
			WithIdentity(id).
			WithError(err).
			ToSlice()...)
		return err
	}

	s.logger.DebugContext(ctx, "persisted", applog.FieldIdentity, applog.MaskIdentity(id),
		applog.FieldRecords, s.records.Len())
	return nil
}

func (s *Session) save(ctx context.Context, id string, settings payroll.Settings) error {
	settingsDoc, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	recordsDoc, err := json.Marshal(s.records.Snapshot())
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	if err := s.repo.SaveDocument(ctx, id, store.KindSettings, settingsDoc); err != nil {
		return err
	}
	if err := s.repo.SaveDocument(ctx, id, store.KindRecords, recordsDoc); err != nil {
		return err
	}
	if err := s.repo.SetSetting(ctx, store.SettingCurrentIdentity, id); err != nil {
		return err
	}
	return nil
}

// autosave persists after an edit. Being logged out or lacking consent is
// not an error here: the edit stays in memory.
func (s *Session) autosave(ctx context.Context) error {
	err := s.Persist(ctx)
	if errors.Is(err, ErrNotLoggedIn) || errors.Is(err, ErrStorageNotAuthorized) {
		return nil
	}
	return err
}
