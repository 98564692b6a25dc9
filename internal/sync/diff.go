package sync

import "github.com/firefox-ai/prompts-sync/internal/remotesettings"

// UpdatePair carries the stored record alongside its replacement content.
type UpdatePair struct {
	// Old is the record currently in the collection, including its
	// server-assigned revision stamp.
	Old remotesettings.Record

	// New is the desired replacement content.
	New remotesettings.Record
}

// DiffResult partitions the desired and actual record sets into the three
// disjoint change sets. Records present in both sets with identical content
// appear in none of them. A DiffResult is computed fresh each run and never
// persisted.
type DiffResult struct {
	ToCreate []remotesettings.Record
	ToUpdate []UpdatePair
	ToDelete []remotesettings.Record
}

// Empty reports whether the diff contains no changes.
func (d DiffResult) Empty() bool {
	return len(d.ToCreate) == 0 && len(d.ToUpdate) == 0 && len(d.ToDelete) == 0
}

// Operations returns the total number of change operations.
func (d DiffResult) Operations() int {
	return len(d.ToCreate) + len(d.ToUpdate) + len(d.ToDelete)
}

// Diff compares the desired and actual record sets by id. Content
// comparison ignores the server-assigned last_modified stamp. The result is
// deterministic for fixed inputs: change sets follow the input ordering.
func Diff(desired, actual []remotesettings.Record) DiffResult {
	actualByID := make(map[string]remotesettings.Record, len(actual))
	for _, record := range actual {
		actualByID[record.ID] = record
	}
	desiredIDs := make(map[string]struct{}, len(desired))

	var result DiffResult
	for _, record := range desired {
		desiredIDs[record.ID] = struct{}{}
		existing, ok := actualByID[record.ID]
		switch {
		case !ok:
			result.ToCreate = append(result.ToCreate, record)
		case !existing.ContentEquals(record):
			result.ToUpdate = append(result.ToUpdate, UpdatePair{Old: existing, New: record})
		}
	}
	for _, record := range actual {
		if _, ok := desiredIDs[record.ID]; !ok {
			result.ToDelete = append(result.ToDelete, record)
		}
	}
	return result
}
