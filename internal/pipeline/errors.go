package pipeline

import (
	"errors"

	"github.com/tobi-salau/resumescan/internal/common"
)

// ScanError is the structured failure the orchestrator returns. Message is
// display-safe: no parser internals, no provider payloads, no stack traces.
// The underlying technical detail is logged, not returned.
type ScanError struct {
	Kind    error // one of the common.Err* sentinels
	Message string
	cause   error
}

func (e *ScanError) Error() string { return e.Message }

func (e *ScanError) Unwrap() error { return e.Kind }

func newScanError(kind error, message string, cause error) *ScanError {
	return &ScanError{Kind: kind, Message: message, cause: cause}
}

// IsValidation reports whether err is a pre-side-effect input rejection.
func IsValidation(err error) bool {
	return errors.Is(err, common.ErrValidation)
}
