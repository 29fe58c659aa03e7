package endpoints

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate JSON keys.
type Strictness struct {
	OnDuplicateKey Severity // Warn or Error (duplicate JSON keys).
}

// DecodeOpt bundles wire-level decoding options. Schema composition itself
// takes no options; these apply only at the DecodeJSONBytes boundary.
type DecodeOpt struct {
	Strictness Strictness
	MaxBytes   int64
}
