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
	"time"
)

// LegacyClient talks to the deprecated Freckle v1 API, which
// authenticated with an account name plus token query parameter instead
// of a header-carried access token. Every call emits a deprecation
// warning; new code should use Client.
type LegacyClient struct {
	accountName string
	apiToken    string
	http        *http.Client
	log         *slog.Logger
}

// NewLegacyClient builds a client for the Freckle v1 API.
func NewLegacyClient(accountName, apiToken string, log *slog.Logger) *LegacyClient {
	if log == nil {
		log = slog.Default()
	}
	return &LegacyClient{
		accountName: accountName,
		apiToken:    apiToken,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// FetchJSON performs one request against the v1 API. The v1 protocol has
// no pagination relation, so a single request is issued and its decoded
// body returned.
func (c *LegacyClient) FetchJSON(ctx context.Context, method, path string, query Params, body Params) (json.RawMessage, error) {
	c.log.Warn("the account-token Freckle v1 API is deprecated; migrate to the Noko v2 client",
		slog.String("account", c.accountName))

	u := &url.URL{
		Scheme: "https",
		Host:   c.accountName + ".letsfreckle.com",
		Path:   fmt.Sprintf("/api/%s.json", path),
	}
	q := u.Query()
	for k, v := range query {
		q.Set(k, fmt.Sprint(v))
	}
	q.Set("token", c.apiToken)
	u.RawQuery = q.Encode()

	if body == nil {
		body = Params{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "noko-client/"+Version)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: raw}
	}
	return json.RawMessage(raw), nil
}

// LegacyClientV2 talks to the Freckle-branded v2 API at
// api.letsfreckle.com, which carried the access token in an
// X-FreckleToken header. The endpoints are the same as Noko's v2 but the
// hostname is retired; every call emits a deprecation warning. New code
// should use Client.
type LegacyClientV2 struct {
	accessToken string
	http        *http.Client
	log         *slog.Logger
}

// NewLegacyClientV2 builds a client for the Freckle-branded v2 API.
func NewLegacyClientV2(accessToken string, log *slog.Logger) *LegacyClientV2 {
	if log == nil {
		log = slog.Default()
	}
	return &LegacyClientV2{
		accessToken: accessToken,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// FetchJSON performs one request against the Freckle-branded v2 API.
// Like the v1 client it issues a single request; callers wanting
// pagination should use Client.
func (c *LegacyClientV2) FetchJSON(ctx context.Context, method, path string, query Params, body Params) (json.RawMessage, error) {
	c.log.Warn("the letsfreckle.com v2 hostname is deprecated; migrate to the Noko v2 client")

	u := &url.URL{
		Scheme: "https",
		Host:   "api.letsfreckle.com",
		Path:   "/v2/" + path,
	}
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
	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "noko-client/"+Version)
	req.Header.Set("X-FreckleToken", c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: raw}
	}
	return json.RawMessage(raw), nil
}
