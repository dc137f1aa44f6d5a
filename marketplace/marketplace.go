// Package marketplace is the client for the third-party marketplace
// metadata API that serves vehicle-compatibility data.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/parts-pile/fitment/config"
	"github.com/parts-pile/fitment/fitment"
)

const (
	compatibilitiesPath = "/compatibilities/find"
	propertyValuesPath  = "/compatibilities/property-values"

	marketplaceHeader = "X-Marketplace-Id"
)

// Client issues lookups against the marketplace metadata API. One instance
// serves the whole process; it is safe for concurrent use.
type Client struct {
	cfg  *config.Config
	http *http.Client
}

// New builds a client from the injected configuration. The HTTP client
// carries the configured timeout so a hung upstream connection can never
// pin a request forever.
func New(cfg *config.Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.UpstreamTimeout},
	}
}

type compatibilityRequest struct {
	CategoryID      string             `json:"categoryId"`
	PropertyFilters []fitment.Property `json:"propertyFilters"`
	PropertyNames   []string           `json:"propertyNames"`
}

type compatibilityResponse struct {
	Compatibilities []fitment.Record `json:"compatibilities"`
}

type propertyValuesRequest struct {
	CategoryID      string             `json:"categoryId"`
	PropertyFilters []fitment.Property `json:"propertyFilters"`
	PropertyName    string             `json:"propertyName"`
}

type propertyValuesResponse struct {
	PropertyValues []string `json:"propertyValues"`
}

// FindCompatibilities runs one compatibility lookup: which fitment records
// match the given filters, reported with the requested property names.
func (c *Client) FindCompatibilities(ctx context.Context, categoryID string, filters []fitment.Property, propertyNames []string) ([]fitment.Record, error) {
	payload := compatibilityRequest{
		CategoryID:      categoryID,
		PropertyFilters: filters,
		PropertyNames:   propertyNames,
	}

	var resp compatibilityResponse
	if err := c.post(ctx, compatibilitiesPath, payload, &resp); err != nil {
		return nil, err
	}
	return resp.Compatibilities, nil
}

// PropertyValues enumerates the values one property can take under the
// given filters, e.g. every make sold in a year.
func (c *Client) PropertyValues(ctx context.Context, categoryID string, filters []fitment.Property, propertyName string) ([]string, error) {
	payload := propertyValuesRequest{
		CategoryID:      categoryID,
		PropertyFilters: filters,
		PropertyName:    propertyName,
	}

	var resp propertyValuesResponse
	if err := c.post(ctx, propertyValuesPath, payload, &resp); err != nil {
		return nil, err
	}
	return resp.PropertyValues, nil
}

// BranchResult is the settled outcome of one fan-out branch.
type BranchResult struct {
	Records []fitment.Record
	Err     error
}

// FindAllCompatibilities issues one lookup per branch concurrently and
// waits for every branch to settle. Results come back in branch-issuance
// order; a failing branch never aborts the others, and its error is
// retained for the caller to log.
func (c *Client) FindAllCompatibilities(ctx context.Context, categoryID string, branches [][]fitment.Property, propertyNames []string) []BranchResult {
	results := make([]BranchResult, len(branches))

	var wg sync.WaitGroup
	for i, branch := range branches {
		wg.Add(1)
		go func(i int, branch []fitment.Property) {
			defer wg.Done()
			records, err := c.FindCompatibilities(ctx, categoryID, branch, propertyNames)
			results[i] = BranchResult{Records: records, Err: err}
		}(i, branch)
	}
	wg.Wait()

	return results
}

// post sends one JSON request with the fixed header set and decodes the
// JSON response into out. The request is bound to ctx so dropping the
// inbound connection cancels in-flight upstream calls.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIBaseURL+path, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	req.Header.Set(marketplaceHeader, c.cfg.MarketplaceID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call marketplace API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("marketplace API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode marketplace response: %w", err)
	}
	return nil
}
