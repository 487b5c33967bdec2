// Package catalog loads the product window shown by the showcase from the
// remote catalog endpoint.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/fairyhunter13/product-card-showcase/internal/config"
	"github.com/fairyhunter13/product-card-showcase/internal/model"
	"github.com/fairyhunter13/product-card-showcase/internal/obs"
)

// FailureMessage is the only text users see when a load fails.
const FailureMessage = "There was an error fetching the products!"

// ErrFetchFailed covers every way a load can fail: transport, status,
// decoding and schema errors.
var ErrFetchFailed = errors.New("fetch failed")

// maxBodyBytes bounds how much of a response body is decoded.
const maxBodyBytes = 8 << 20

// FetchError carries the stage and cause of a failed load. It always matches
// ErrFetchFailed under errors.Is.
type FetchError struct {
	Stage string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed at %s: %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFetchFailed.
func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }

// Fetcher loads the product window.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Product, error)
}

// Client fetches the catalog over HTTP.
type Client struct {
	URL  string
	Max  int
	HTTP *http.Client
}

// NewClient builds a Client from configuration. A zero FetchTimeout leaves
// the request unbounded.
func NewClient(cfg config.Config) *Client {
	return &Client{
		URL:  cfg.CatalogURL,
		Max:  cfg.MaxProducts,
		HTTP: &http.Client{Timeout: cfg.FetchTimeout},
	}
}

// Fetch issues one GET to the catalog endpoint and returns at most Max
// validated products in endpoint order.
func (c *Client) Fetch(ctx context.Context) ([]model.Product, error) {
	start := time.Now()
	products, err := c.fetch(ctx)
	if err != nil {
		obs.Logger.Error("catalog_fetch_failed",
			zap.String("url", c.URL),
			zap.Error(err),
			zap.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000.0),
		)
		return nil, err
	}
	obs.Logger.Info("catalog_fetched",
		zap.String("url", c.URL),
		zap.Int("count", len(products)),
		zap.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000.0),
	)
	return products, nil
}

func (c *Client) fetch(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, &FetchError{Stage: "request", Err: err}
	}
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, &FetchError{Stage: "transport", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{Stage: "status", Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	var cat model.Catalog
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&cat); err != nil {
		return nil, &FetchError{Stage: "decode", Err: err}
	}
	limit := c.Max
	if limit <= 0 {
		limit = 8
	}
	products, err := cat.Window(limit)
	if err != nil {
		return nil, &FetchError{Stage: "validate", Err: err}
	}
	return products, nil
}
