package noko

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyClient_TokenOnQueryString(t *testing.T) {
	var reqURL *url.URL
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqURL = r.URL
		w.Write([]byte(`[{"id":1}]`))
	}))
	defer srv.Close()

	var logBuf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, nil))

	c := NewLegacyClient("acme", "v1-token", log)
	// Point the legacy client's fixed host at the test server.
	base, _ := url.Parse(srv.URL)
	c.http = &http.Client{Transport: rewriteHost{base: base}}

	raw, err := c.FetchJSON(context.Background(), http.MethodGet, "entries", Params{"per_page": 100}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(raw))

	assert.Equal(t, "/api/entries.json", reqURL.Path)
	assert.Equal(t, "v1-token", reqURL.Query().Get("token"))
	assert.Equal(t, "100", reqURL.Query().Get("per_page"))

	// Every legacy call emits a deprecation warning.
	assert.Contains(t, logBuf.String(), "deprecated")
}

func TestLegacyClientV2_TokenHeader(t *testing.T) {
	var (
		reqURL    *url.URL
		reqHeader http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqURL = r.URL
		reqHeader = r.Header.Clone()
		w.Write([]byte(`{"id":7}`))
	}))
	defer srv.Close()

	var logBuf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, nil))

	c := NewLegacyClientV2("v2-token", log)
	base, _ := url.Parse(srv.URL)
	c.http = &http.Client{Transport: rewriteHost{base: base}}

	raw, err := c.FetchJSON(context.Background(), http.MethodGet, "current_user", Params{"per_page": 50}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7}`, string(raw))

	assert.Equal(t, "/v2/current_user", reqURL.Path)
	assert.Equal(t, "50", reqURL.Query().Get("per_page"))
	assert.Equal(t, "v2-token", reqHeader.Get("X-FreckleToken"))
	assert.Empty(t, reqURL.Query().Get("token"))

	assert.Contains(t, logBuf.String(), "deprecated")
}

// rewriteHost redirects the legacy client's fixed host to a test server.
type rewriteHost struct {
	base *url.URL
}

func (rt rewriteHost) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = rt.base.Scheme
	req.URL.Host = rt.base.Host
	return http.DefaultTransport.RoundTrip(req)
}
