// Package remotesettings provides a client for the Remote Settings HTTP API:
// record listing, batched record mutations and the collection review
// workflow.
package remotesettings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks -source=client.go Client,Batch

// ErrConnection indicates the server could not be reached or authenticated
// to during the startup credential check.
var ErrConnection = errors.New("failed to connect to remote settings server")

// UserAgent is sent on every request.
const UserAgent = "prompts-sync/1.0"

// Client is the narrow store capability consumed by the sync engine.
type Client interface {
	// ServerInfo fetches the server root resource, exposing the
	// authenticated user when credentials are valid.
	ServerInfo(ctx context.Context) (*ServerInfo, error)

	// FetchAllRecords lists all current records in the collection.
	FetchAllRecords(ctx context.Context) ([]Record, error)

	// NewBatch starts an empty batch of record mutations.
	NewBatch() Batch

	// RequestReview moves the collection into the pending-review state.
	RequestReview(ctx context.Context, message string) error

	// ApproveChanges approves the pending review.
	ApproveChanges(ctx context.Context) error
}

// Batch accumulates record mutations and submits them as one request.
// Operations are queued locally; nothing is sent until Commit.
type Batch interface {
	CreateRecord(record Record)
	UpdateRecord(record Record)
	DeleteRecord(id string)

	// Commit submits all queued operations, chunked to the server's
	// batch request limit, and returns the number of applied operations.
	// The server offers no partial-retry: whatever subset it applied
	// before a failure is final.
	Commit(ctx context.Context) (int, error)
}

// ClientConfig configures an HTTPClient.
type ClientConfig struct {
	// ServerURL is the base URL of the Remote Settings API, e.g.
	// "https://remote-settings-dev.allizom.org/v1".
	ServerURL string

	// Bucket and Collection address the target collection. Both are
	// assumed to pre-exist.
	Bucket     string
	Collection string

	// Authorization is sent verbatim in the Authorization header when set.
	Authorization string

	// Timeout bounds each request. Zero means DefaultRequestTimeout.
	Timeout time.Duration

	// DryRun makes all mutating calls log and succeed without touching
	// the server. Reads stay real.
	DryRun bool
}

// DefaultRequestTimeout is used when ClientConfig.Timeout is zero.
const DefaultRequestTimeout = 30 * time.Second

// DefaultBatchMaxRequests is the server's default limit on operations per
// batch request, used until the server advertises its own.
const DefaultBatchMaxRequests = 25

// nextPageHeader links one page of a record listing to the next.
const nextPageHeader = "Next-Page"

// HTTPClient implements Client against the Remote Settings HTTP API.
type HTTPClient struct {
	cfg        ClientConfig
	httpClient *http.Client

	// batchMaxRequests is the per-request operation limit, refreshed
	// from the server's advertised settings on ServerInfo.
	batchMaxRequests int
}

// NewHTTPClient creates a client for the configured bucket and collection.
func NewHTTPClient(cfg ClientConfig) *HTTPClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultRequestTimeout
	}
	return &HTTPClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		batchMaxRequests: DefaultBatchMaxRequests,
	}
}

// ServerInfo fetches the server root resource. The server's advertised
// batch operation limit, when present, is picked up for later commits.
func (c *HTTPClient) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	body, _, err := c.doURL(ctx, http.MethodGet, c.cfg.ServerURL+"/", nil)
	if err != nil {
		return nil, err
	}
	if limit := gjson.GetBytes(body, "settings.batch_max_requests"); limit.Exists() && limit.Int() > 0 {
		c.batchMaxRequests = int(limit.Int())
	}
	return &ServerInfo{
		UserID: gjson.GetBytes(body, "user.id").String(),
	}, nil
}

// FetchAllRecords lists all current records in the collection, following
// pagination until the listing is exhausted.
func (c *HTTPClient) FetchAllRecords(ctx context.Context) ([]Record, error) {
	var records []Record
	url := c.cfg.ServerURL + c.collectionPath() + "/records"
	for url != "" {
		body, nextPage, err := c.doURL(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		var response struct {
			Data []Record `json:"data"`
		}
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("failed to parse records response: %w", err)
		}
		records = append(records, response.Data...)
		url = nextPage
	}
	return records, nil
}

// NewBatch starts an empty batch bound to this client.
func (c *HTTPClient) NewBatch() Batch {
	return &httpBatch{client: c}
}

// RequestReview moves the collection into the pending-review state.
func (c *HTTPClient) RequestReview(ctx context.Context, message string) error {
	if c.cfg.DryRun {
		slog.Info("dry run: skipping review request", "collection", c.cfg.Collection)
		return nil
	}
	return c.patchCollection(ctx, map[string]string{
		"status":              "to-review",
		"last_editor_comment": message,
	})
}

// ApproveChanges approves the pending review.
func (c *HTTPClient) ApproveChanges(ctx context.Context) error {
	if c.cfg.DryRun {
		slog.Info("dry run: skipping approval", "collection", c.cfg.Collection)
		return nil
	}
	return c.patchCollection(ctx, map[string]string{
		"status": "to-sign",
	})
}

func (c *HTTPClient) patchCollection(ctx context.Context, attributes map[string]string) error {
	payload := map[string]any{"data": attributes}
	_, err := c.do(ctx, http.MethodPatch, c.collectionPath(), payload)
	return err
}

func (c *HTTPClient) collectionPath() string {
	return fmt.Sprintf("/buckets/%s/collections/%s", c.cfg.Bucket, c.cfg.Collection)
}

// do executes one request against a server-relative path and returns the
// response body. Non-2xx responses surface as an APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	data, _, err := c.doURL(ctx, method, c.cfg.ServerURL+path, payload)
	return data, err
}

// doURL executes one request against an absolute URL and returns the
// response body together with the Next-Page header, empty when the
// response is the last (or only) page of a listing.
func (c *HTTPClient) doURL(ctx context.Context, method, url string, payload any) ([]byte, string, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Authorization != "" {
		req.Header.Set("Authorization", c.cfg.Authorization)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", NewAPIError(resp.StatusCode, url, resp.Status)
	}
	return data, resp.Header.Get(nextPageHeader), nil
}
