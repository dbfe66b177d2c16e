package store

import "time"

// Kind names one of the documents kept per identity.
type Kind string

const (
	KindSettings Kind = "settings"
	KindRecords  Kind = "records"
)

// Document is a JSON payload stored for an identity.
type Document struct {
	Identity  string
	Kind      Kind
	Payload   []byte
	UpdatedAt time.Time
}

// App-wide setting keys.
const (
	SettingCurrentIdentity   = "current_identity"
	SettingStorageAuthorized = "storage_authorized"
)
