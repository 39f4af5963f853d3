package constants

// ScanStatus is the canonical status for rows in scan_job and the lifecycle
// state reported by the scan pipeline. Failures at a sub-step do not produce
// a distinct status; a scan always ends COMPLETED with whatever partial data
// it obtained.
type ScanStatus string

// Stable values (store these exact strings in DB).
const (
	ScanStatusPending   ScanStatus = "PENDING"   // created, not yet started
	ScanStatusActive    ScanStatus = "ACTIVE"    // pipeline running
	ScanStatusCompleted ScanStatus = "COMPLETED" // terminal
)

var ScanStatuses = []string{
	string(ScanStatusPending),
	string(ScanStatusActive),
	string(ScanStatusCompleted),
}
