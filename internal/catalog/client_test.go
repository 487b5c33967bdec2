package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/product-card-showcase/internal/config"
)

func catalogJSON(n int) string {
	items := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, fmt.Sprintf(
			`{"id":%d,"title":"Product number %d","category":"groceries","price":%d.5,"thumbnail":"https://cdn.example.test/%d/thumbnail.png","rating":4.5}`,
			i, i, i, i))
	}
	return fmt.Sprintf(`{"products":[%s],"total":%d,"skip":0,"limit":30}`, strings.Join(items, ","), n)
}

func serve(t *testing.T, status int, body string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(url string) *Client {
	cfg := config.Defaults()
	cfg.CatalogURL = url
	return NewClient(cfg)
}

func TestFetchTruncatesToFirstEight(t *testing.T) {
	var hits atomic.Int32
	srv := serve(t, http.StatusOK, catalogJSON(30), &hits)
	got, err := newTestClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 8)
	for i, p := range got {
		assert.Equal(t, i+1, p.ID)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchFewerThanMax(t *testing.T) {
	srv := serve(t, http.StatusOK, catalogJSON(3), nil)
	got, err := newTestClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "3.5", got[2].Price.Decimal.String())
}

func TestFetchFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		stage  string
	}{
		{"server error", http.StatusInternalServerError, `{"message":"boom"}`, "status"},
		{"not json", http.StatusOK, `<html>`, "decode"},
		{"missing products", http.StatusOK, `{"total":3}`, "validate"},
		{"products not array", http.StatusOK, `{"products":{}}`, "decode"},
		{"bad product", http.StatusOK, `{"products":[{"id":1,"title":"","category":"x","price":1,"thumbnail":"https://a/b.png"}]}`, "validate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := serve(t, tc.status, tc.body, nil)
			_, err := newTestClient(srv.URL).Fetch(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFetchFailed)
			var fe *FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.stage, fe.Stage)
		})
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	_, err := newTestClient(url).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})
	cfg := config.Defaults()
	cfg.CatalogURL = srv.URL
	cfg.FetchTimeout = 50 * time.Millisecond
	_, err := NewClient(cfg).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrFetchFailed)
}
