package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldIdentity  = "identity"
	FieldDate      = "date"
	FieldMonth     = "month"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldFormat    = "format"
	FieldRecords   = "records"
	FieldKind      = "kind"
	FieldSchema    = "schema_version"
)

// Components
const (
	ComponentApp     = "app"
	ComponentSession = "session"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentExport  = "export"
	ComponentUI      = "ui"
)

// Operations
const (
	OpLogin     = "login"
	OpLogout    = "logout"
	OpErase     = "erase"
	OpHydrate   = "hydrate"
	OpPersist   = "persist"
	OpUpdate    = "update"
	OpExport    = "export"
	OpAuthorize = "authorize"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

func (f LogFields) WithIdentity(id string) LogFields {
	f[FieldIdentity] = MaskIdentity(id)
	return f
}

// WithError adds the error field when err is non-nil.
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}

// MaskIdentity hides all but the last four characters of a mobile number.
func MaskIdentity(id string) string {
	if len(id) <= 4 {
		return id
	}
	masked := make([]byte, len(id))
	for i := range masked {
		masked[i] = '*'
	}
	copy(masked[len(id)-4:], id[len(id)-4:])
	return string(masked)
}
