package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// FileStatus describes one tracked file in a transport-friendly format.
type FileStatus struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Source      string `json:"source"`
	LastUpdated string `json:"lastUpdated,omitempty"`
	Remarks     string `json:"remarks,omitempty"`
}

// WriteAccess reports whether the watched folders accept writes.
type WriteAccess struct {
	CanWrite bool   `json:"canWrite"`
	Error    string `json:"error,omitempty"`
}

// OperationResult is the uniform outcome shape for lifecycle mutations.
// Error carries the failure for consumers that render rather than branch;
// Warning carries non-fatal notes on otherwise successful calls.
type OperationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// ExpandResult reports the outcome of a prefix expansion. Count is the
// number of derived files created, which can be non-zero even on failure
// when the original could not be cleaned up.
type ExpandResult struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Error   string `json:"error,omitempty"`
}

// ClearResult reports how many status records a clear removed.
type ClearResult struct {
	Success bool   `json:"success"`
	Removed int64  `json:"removed"`
	Error   string `json:"error,omitempty"`
}

// ImportResult reports the outcome of a bulk CSV import.
type ImportResult struct {
	Success       bool   `json:"success"`
	ImportedCount int64  `json:"importedCount"`
	Error         string `json:"error,omitempty"`
}

// StatusListResponse wraps a collection of file statuses.
type StatusListResponse struct {
	Files []FileStatus `json:"files"`
}

// StatusStatsResponse provides normalized per-status counts.
type StatusStatsResponse struct {
	Counts map[string]int `json:"counts"`
}
