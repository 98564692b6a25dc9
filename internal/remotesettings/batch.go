package remotesettings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// batchRequest is one sub-request inside a /batch payload.
type batchRequest struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Body   any    `json:"body,omitempty"`
}

// batchResponse mirrors the server's per-request results.
type batchResponse struct {
	Responses []struct {
		Status int    `json:"status"`
		Path   string `json:"path"`
	} `json:"responses"`
}

// httpBatch queues record mutations for a single /batch submission.
type httpBatch struct {
	client   *HTTPClient
	requests []batchRequest
}

// CreateRecord queues a record creation.
func (b *httpBatch) CreateRecord(record Record) {
	b.requests = append(b.requests, batchRequest{
		Method: http.MethodPost,
		Path:   b.client.collectionPath() + "/records",
		Body:   map[string]any{"data": record},
	})
}

// UpdateRecord queues a full-record replacement. Callers are responsible
// for clearing the server-assigned revision stamp first.
func (b *httpBatch) UpdateRecord(record Record) {
	b.requests = append(b.requests, batchRequest{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("%s/records/%s", b.client.collectionPath(), record.ID),
		Body:   map[string]any{"data": record},
	})
}

// DeleteRecord queues a deletion by id.
func (b *httpBatch) DeleteRecord(id string) {
	b.requests = append(b.requests, batchRequest{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("%s/records/%s", b.client.collectionPath(), id),
	})
}

// Commit submits all queued operations, splitting them across as many
// /batch requests as the server's per-request limit demands. Operations
// applied before a failing chunk are final.
func (b *httpBatch) Commit(ctx context.Context) (int, error) {
	if len(b.requests) == 0 {
		return 0, nil
	}
	if b.client.cfg.DryRun {
		slog.Info("dry run: skipping batch submission", "operations", len(b.requests))
		return len(b.requests), nil
	}

	applied := 0
	for start := 0; start < len(b.requests); start += b.client.batchMaxRequests {
		end := min(start+b.client.batchMaxRequests, len(b.requests))
		count, err := b.submit(ctx, b.requests[start:end])
		applied += count
		if err != nil {
			return applied, err
		}
	}
	return applied, nil
}

// submit sends one /batch request and verifies every sub-response.
func (b *httpBatch) submit(ctx context.Context, requests []batchRequest) (int, error) {
	body, err := b.client.do(ctx, http.MethodPost, "/batch", map[string]any{
		"requests": requests,
	})
	if err != nil {
		return 0, err
	}

	var response batchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return 0, fmt.Errorf("failed to parse batch response: %w", err)
	}
	for _, sub := range response.Responses {
		if sub.Status >= http.StatusBadRequest {
			return 0, NewAPIError(sub.Status, sub.Path, "batch sub-request failed")
		}
	}
	return len(response.Responses), nil
}
