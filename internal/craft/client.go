package craft

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fennwick/ledgerlens/internal/common"
	"github.com/fennwick/ledgerlens/internal/mapping"
	"github.com/fennwick/ledgerlens/internal/model"
)

// Client fetches collection items from the Craft API.
type Client struct {
	httpClient *http.Client
	cfg        Config
}

// itemsResponse is the wire shape of both the items and the collections
// listing endpoints.
type itemsResponse struct {
	Items []model.RawItem `json:"items"`
}

type collectionsResponse struct {
	Items []Collection `json:"items"`
}

// NewClient creates a new Craft API client from the given config. The config
// is normalized on the way in.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg.Normalize(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchItems retrieves the raw collection items, discovering a collection
// first when none is configured.
func (c *Client) FetchItems(ctx context.Context) ([]model.RawItem, error) {
	if c.cfg.APIBaseURL == "" {
		return nil, common.NewUserError("no Craft API configuration found, run 'ledgerlens config set' first", common.ErrMissingBaseURL)
	}

	collectionID, err := c.resolveCollectionID(ctx)
	if err != nil {
		return nil, err
	}

	itemsURL, err := BuildItemsURL(c.cfg, collectionID)
	if err != nil {
		return nil, err
	}

	slog.Debug("Requesting Craft items",
		"url", itemsURL,
		"collection_id", collectionID)

	var resp itemsResponse
	if err := c.getJSON(ctx, itemsURL, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}

// FetchExpenses retrieves the raw items and normalizes each into an Expense.
// A malformed item degrades to defaults for that record only; it never fails
// the batch.
func (c *Client) FetchExpenses(ctx context.Context) ([]model.Expense, error) {
	items, err := c.FetchItems(ctx)
	if err != nil {
		return nil, err
	}

	expenses := make([]model.Expense, 0, len(items))
	for _, item := range items {
		expenses = append(expenses, mapping.MapItem(item))
	}

	slog.Debug("Normalized Craft items", "count", len(expenses))
	return expenses, nil
}

// resolveCollectionID returns the configured collection ID, or discovers one
// by listing collections and ranking their names.
func (c *Client) resolveCollectionID(ctx context.Context) (string, error) {
	if c.cfg.CollectionID != "" {
		return c.cfg.CollectionID, nil
	}

	collectionsURL := BuildCollectionsURL(c.cfg)
	if collectionsURL == "" {
		return "", fmt.Errorf("%w: provide a collection id or a valid API base URL to discover collections", common.ErrCollectionRequired)
	}

	var resp collectionsResponse
	if err := c.getJSON(ctx, collectionsURL, &resp); err != nil {
		return "", fmt.Errorf("unable to list collections: %w", err)
	}

	collectionID := SelectCollectionID(resp.Items)
	if collectionID == "" {
		return "", fmt.Errorf("%w: provide a collection id or check API access", common.ErrNoCollections)
	}

	slog.Info("Auto-selected Craft collection", "collection_id", collectionID)
	return collectionID, nil
}

// getJSON performs an authenticated GET and decodes the JSON response,
// retrying transport errors and server-side failures.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: false}
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if c.cfg.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		if err := checkStatus(resp, rawURL); err != nil {
			return err
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &common.RetryableError{
				Err:       fmt.Errorf("failed to decode response from %s: %w", rawURL, err),
				Retryable: false,
			}
		}
		return nil
	}

	return common.WithRetry(ctx, operation, common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 250 * time.Millisecond,
		MaxDelay:     5 * time.Second,
	})
}

// checkStatus maps upstream HTTP failures to descriptive errors. Client-side
// failures are not retryable; server-side ones are.
func checkStatus(resp *http.Response, rawURL string) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return &common.RetryableError{
			Err: fmt.Errorf("%w (401): if access mode is API key, verify the key; if public, leave it empty (url: %s)",
				common.ErrUnauthorized, rawURL),
			Retryable: false,
		}
	case resp.StatusCode == http.StatusNotFound:
		return &common.RetryableError{
			Err: fmt.Errorf("%w (404): check the API base URL and that the collection or document exists (url: %s)",
				common.ErrNotFound, rawURL),
			Retryable: false,
		}
	case resp.StatusCode >= http.StatusInternalServerError:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("craft API error: %d - %s", resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &common.RetryableError{
			Err:       fmt.Errorf("craft API error: %d - %s (url: %s)", resp.StatusCode, string(body), rawURL),
			Retryable: false,
		}
	}
}
