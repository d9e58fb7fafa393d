package constants

// ScanStatus is the canonical status for rows in scans.
type ScanStatus string

// Stable values (store these exact strings in DB).
const (
	ScanStatusPending    ScanStatus = "PENDING"    // row allocated, pipeline not yet running
	ScanStatusProcessing ScanStatus = "PROCESSING" // pipeline in progress
	ScanStatusCompleted  ScanStatus = "COMPLETED"  // terminal success
	ScanStatusFailed     ScanStatus = "FAILED"     // terminal failure
)

// ScanStatuses holds the full status domain for schema validation.
var ScanStatuses = []string{
	string(ScanStatusPending),
	string(ScanStatusProcessing),
	string(ScanStatusCompleted),
	string(ScanStatusFailed),
}

// IsTerminal reports whether no further automatic transition occurs from s.
func (s ScanStatus) IsTerminal() bool {
	return s == ScanStatusCompleted || s == ScanStatusFailed
}
