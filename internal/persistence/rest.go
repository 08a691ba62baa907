package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"jetfleet-backoffice/internal/logger"
)

// RESTClient talks to a hosted table-oriented data store over its REST
// surface ({base}/rest/v1/{table}, PostgREST conventions).
type RESTClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRESTClient(baseURL, apiKey string) *RESTClient {
	return &RESTClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *RESTClient) tableURL(table string) string {
	return fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
}

func (c *RESTClient) newRequest(ctx context.Context, method, rawURL string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *RESTClient) List(ctx context.Context, table string, opts ...ListOption) ([]Record, error) {
	options := ListOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	query := url.Values{}
	query.Set("select", "*")
	if options.OrderColumn != "" {
		dir := "asc"
		if options.OrderDescending {
			dir = "desc"
		}
		query.Set("order", options.OrderColumn+"."+dir)
	}

	logger.PersistenceCall("list", table)
	req, err := c.newRequest(ctx, http.MethodGet, c.tableURL(table)+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.PersistenceResult("list", table, err)
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		logger.PersistenceResult("list", table, ErrResourceMissing)
		return nil, ErrResourceMissing
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := c.statusError("list", table, resp)
		logger.PersistenceResult("list", table, err)
		return nil, err
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("list %s: failed to decode response: %w", table, err)
	}
	logger.PersistenceResult("list", table, nil, "count", len(records))
	return records, nil
}

func (c *RESTClient) Insert(ctx context.Context, table string, rec Record) (Record, error) {
	logger.PersistenceCall("insert", table)
	req, err := c.newRequest(ctx, http.MethodPost, c.tableURL(table), rec)
	if err != nil {
		return nil, err
	}
	// Ask the store to echo the inserted row (server-assigned id included).
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.PersistenceResult("insert", table, err)
		return nil, fmt.Errorf("insert %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := c.statusError("insert", table, resp)
		logger.PersistenceResult("insert", table, err)
		return nil, err
	}

	var inserted []Record
	if err := json.NewDecoder(resp.Body).Decode(&inserted); err != nil {
		// The row was inserted; only the echo is unreadable. The caller
		// falls back to its locally-constructed entity, but the malformed
		// response is worth surfacing.
		logger.Warn("insert echo could not be decoded", "table", table, "error", err)
		logger.PersistenceResult("insert", table, nil, "echoed", false)
		return nil, nil
	}
	if len(inserted) == 0 {
		// Some deployments do not echo the row; the caller falls back to
		// its locally-constructed entity.
		logger.PersistenceResult("insert", table, nil, "echoed", false)
		return nil, nil
	}
	logger.PersistenceResult("insert", table, nil, "echoed", true)
	return inserted[0], nil
}

func (c *RESTClient) Update(ctx context.Context, table string, rec Record, id string) error {
	logger.PersistenceCall("update", table, "id", id)
	rawURL := c.tableURL(table) + "?id=eq." + url.QueryEscape(id)
	req, err := c.newRequest(ctx, http.MethodPatch, rawURL, rec)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.PersistenceResult("update", table, err, "id", id)
		return fmt.Errorf("update %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := c.statusError("update", table, resp)
		logger.PersistenceResult("update", table, err, "id", id)
		return err
	}
	logger.PersistenceResult("update", table, nil, "id", id)
	return nil
}

func (c *RESTClient) Delete(ctx context.Context, table string, id string) error {
	logger.PersistenceCall("delete", table, "id", id)
	rawURL := c.tableURL(table) + "?id=eq." + url.QueryEscape(id)
	req, err := c.newRequest(ctx, http.MethodDelete, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.PersistenceResult("delete", table, err, "id", id)
		return fmt.Errorf("delete %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := c.statusError("delete", table, resp)
		logger.PersistenceResult("delete", table, err, "id", id)
		return err
	}
	logger.PersistenceResult("delete", table, nil, "id", id)
	return nil
}

func (c *RESTClient) GetOne(ctx context.Context, table string, id string) (Record, error) {
	logger.PersistenceCall("getOne", table, "id", id)
	rawURL := c.tableURL(table) + "?id=eq." + url.QueryEscape(id) + "&limit=1"
	req, err := c.newRequest(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.PersistenceResult("getOne", table, err, "id", id)
		return nil, fmt.Errorf("getOne %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrResourceMissing
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := c.statusError("getOne", table, resp)
		logger.PersistenceResult("getOne", table, err, "id", id)
		return nil, err
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("getOne %s: failed to decode response: %w", table, err)
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	logger.PersistenceResult("getOne", table, nil, "id", id)
	return records[0], nil
}

func (c *RESTClient) statusError(operation, table string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%s %s: data store returned %d: %s", operation, table, resp.StatusCode, string(body))
}
