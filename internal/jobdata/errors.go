package jobdata

import "errors"

// Error kinds the adapters classify their failures into. The orchestrator and
// the state container branch on these with errors.Is instead of inspecting
// transport details.
var (
	// ErrSourceUnavailable marks any transient failure of a source: network
	// error, timeout, 5xx, or a non-success response envelope. It always
	// triggers the next tier, never the caller.
	ErrSourceUnavailable = errors.New("jobdata: source unavailable")

	// ErrUnsupported is returned by a source for operations it cannot serve.
	ErrUnsupported = errors.New("jobdata: operation not supported by source")

	// ErrAuthRequired is terminal: surfaced to the caller, no chain fallback.
	ErrAuthRequired = errors.New("jobdata: authentication required")

	ErrNotFound      = errors.New("jobdata: not found")
	ErrAlreadyExists = errors.New("jobdata: already exists")

	// ErrValidation rejects a malformed request before any network call.
	ErrValidation = errors.New("jobdata: invalid request")

	// ErrPersistence marks local mirror failures; callers log and degrade to
	// empty rather than blocking a read path.
	ErrPersistence = errors.New("jobdata: local persistence unavailable")
)
