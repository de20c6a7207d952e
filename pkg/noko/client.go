// Package noko is a typed client for the Noko time-tracking API (v2).
//
// Parameter structs validate and normalize caller input into the exact
// wire format Noko expects before any request is sent, and the request
// engine transparently follows Link-header pagination so every call
// returns a complete result set.
//
// Noko's full API documentation can be found at
// https://developer.nokotime.com/v2
package noko

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Version identifies this library in the User-Agent header.
const Version = "1.0.0"

const defaultBaseURL = "https://api.nokotime.com/v2"

// Client talks to the Noko v2 API using a personal access token.
//
// This client does not implement OAuth, retries or caching; it performs
// exactly one HTTP request per result page and surfaces remote errors
// unmodified to the caller.
type Client struct {
	baseURL     string
	accessToken string
	http        *http.Client
	log         *slog.Logger
}

// NewClient builds a Client for the given access token. An empty baseURL
// selects the public API; a nil logger falls back to slog.Default.
func NewClient(baseURL, accessToken string, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// SetHTTPClient swaps the underlying transport. TLS, connection reuse
// and socket timeouts are the transport's responsibility.
func (c *Client) SetHTTPClient(h *http.Client) {
	if h != nil {
		c.http = h
	}
}

// TransportError reports a non-2xx response from the API. Body carries
// the raw response so callers can inspect Noko's own diagnostics.
type TransportError struct {
	StatusCode int
	Body       []byte
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("noko: unexpected status %d: %s", e.StatusCode, e.Body)
}

// FetchJSON executes one logical call against the API, following the
// Link rel="next" relation until every page has been consumed. List
// responses extend the aggregate; a single-object response is appended
// as the sole element. An empty response body yields (nil, nil),
// distinguishing "no content" from an empty list.
//
// The body is serialized as JSON on every verb, GET included. That
// mirrors the existing wire contract and is intentional.
func (c *Client) FetchJSON(ctx context.Context, method, path string, headers http.Header, query Params, body Params) ([]json.RawMessage, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	q := u.Query()
	for k, v := range query {
		q.Set(k, fmt.Sprint(v))
	}
	u.RawQuery = q.Encode()

	if body == nil {
		body = Params{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	var results []json.RawMessage
	next := u.String()
	for page := 1; next != ""; page++ {
		req, err := http.NewRequestWithContext(ctx, method, next, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "noko-client/"+Version)
		req.Header.Set("X-NokoToken", c.accessToken)
		for k, vs := range headers {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		items, empty, err := readPage(resp)
		if err != nil {
			return nil, err
		}
		if empty {
			// Only possible on the first page: once a page has
			// contributed records, the next relation would already
			// be absent instead.
			return nil, nil
		}
		if results == nil {
			results = []json.RawMessage{}
		}
		results = append(results, items...)

		// Query parameters are superseded by whatever the next link
		// already encodes; method, headers and body are re-sent as is.
		next = nextLink(resp.Header)
		if next != "" {
			c.log.Debug("following next page", slog.Int("page", page+1), slog.String("url", next))
		}
	}
	return results, nil
}

// readPage consumes one response. It returns the page's elements, or
// empty=true for a response with no body at all.
func readPage(resp *http.Response) (items []json.RawMessage, empty bool, err error) {
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, false, &TransportError{StatusCode: resp.StatusCode, Body: raw}
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, true, nil
	}
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, false, err
		}
		if items == nil {
			items = []json.RawMessage{}
		}
		return items, false, nil
	}
	return []json.RawMessage{trimmed}, false, nil
}

// nextLink extracts the rel="next" target from a Link header (RFC 5988).
// Absence of the relation means the current response is the last page.
func nextLink(h http.Header) string {
	for _, field := range h.Values("Link") {
		for _, link := range strings.Split(field, ",") {
			parts := strings.Split(link, ";")
			if len(parts) < 2 {
				continue
			}
			target := strings.Trim(strings.TrimSpace(parts[0]), "<>")
			for _, attr := range parts[1:] {
				k, v, ok := strings.Cut(strings.TrimSpace(attr), "=")
				if ok && strings.TrimSpace(k) == "rel" && strings.Trim(strings.TrimSpace(v), `"`) == "next" {
					return target
				}
			}
		}
	}
	return ""
}

// decodeList unmarshals each aggregated element into T.
func decodeList[T any](raw []json.RawMessage) ([]T, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeOne unmarshals the first aggregated element, for single-resource
// endpoints. Returns nil when the response had no content.
func decodeOne[T any](raw []json.RawMessage) (*T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw[0], &v); err != nil {
		return nil, err
	}
	return &v, nil
}
