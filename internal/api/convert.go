package api

import (
	"shuttle/internal/status"
)

// FromFile converts a status record to its API representation.
func FromFile(file status.File) FileStatus {
	dto := FileStatus{
		ID:      file.ID,
		Name:    file.Name,
		Status:  string(file.Status),
		Source:  file.Source,
		Remarks: file.Remarks,
	}
	if !file.LastUpdated.IsZero() {
		dto.LastUpdated = file.LastUpdated.UTC().Format(dateTimeFormat)
	}
	return dto
}

// FromFiles converts a slice of status records into API DTOs.
func FromFiles(files []status.File) []FileStatus {
	if len(files) == 0 {
		return nil
	}
	out := make([]FileStatus, 0, len(files))
	for _, file := range files {
		out = append(out, FromFile(file))
	}
	return out
}

// MergeStats normalizes store counts into a string-keyed map with every
// known status present, zeroes included.
func MergeStats(stats map[status.Status]int) map[string]int {
	merged := make(map[string]int, len(status.Statuses()))
	for _, known := range status.Statuses() {
		merged[string(known)] = stats[known]
	}
	for st, count := range stats {
		merged[string(st)] = count
	}
	return merged
}
