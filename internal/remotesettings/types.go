package remotesettings

import "fmt"

// Record is the unit of synchronization stored in the collection.
//
// Parameters is kept in its serialized JSON string form so the record stays
// flat and string-valued for transport. LastModified is assigned by the
// server and is only present on records fetched from it; it must never be
// sent back on updates.
type Record struct {
	ID           string `json:"id"`
	Feature      string `json:"feature"`
	Model        string `json:"model"`
	Prompts      string `json:"prompts"`
	Parameters   string `json:"parameters"`
	LastModified int64  `json:"last_modified,omitempty"`
}

// ContentEquals reports whether two records carry the same content,
// ignoring the server-assigned revision stamp.
func (r Record) ContentEquals(other Record) bool {
	return r.WithoutLastModified() == other.WithoutLastModified()
}

// WithoutLastModified returns a copy of the record with the server-assigned
// revision stamp cleared.
func (r Record) WithoutLastModified() Record {
	r.LastModified = 0
	return r
}

// ServerInfo describes the server's view of the caller.
type ServerInfo struct {
	// UserID identifies the authenticated account; empty for anonymous
	// access.
	UserID string
}

// APIError represents a non-2xx response from the Remote Settings server.
type APIError struct {
	StatusCode int
	URL        string
	Message    string
}

// Error returns the error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d for URL %s: %s", e.StatusCode, e.URL, e.Message)
}

// NewAPIError creates a new API error.
func NewAPIError(statusCode int, url, message string) error {
	return &APIError{
		StatusCode: statusCode,
		URL:        url,
		Message:    message,
	}
}
