package status

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle of a tracked file.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusPublished  Status = "published"
	StatusFailed     Status = "failed"
	StatusTimedOut   Status = "timed-out"
)

var allStatuses = []Status{
	StatusProcessing,
	StatusPublished,
	StatusFailed,
	StatusTimedOut,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// ParseStatus normalizes a raw string into a known Status.
func ParseStatus(raw string) (Status, bool) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := statusSet[status]
	return status, ok
}

// Statuses returns every known status value.
func Statuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// File is the persisted lifecycle record for a tracked file. Name is the
// unique key and matches an on-disk filename in one of the watched folders;
// the record's existence does not guarantee the file is still on disk.
type File struct {
	ID          string
	Name        string
	Status      Status
	Source      string
	LastUpdated time.Time
	Remarks     string
}

// NewFile builds a record with a fresh identifier and current timestamp.
func NewFile(name string, status Status, source, remarks string) File {
	return File{
		ID:          uuid.NewString(),
		Name:        name,
		Status:      status,
		Source:      source,
		LastUpdated: time.Now().UTC(),
		Remarks:     remarks,
	}
}
