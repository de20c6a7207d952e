package noko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchJSON_SinglePage(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "secret-token", r.Header.Get("X-NokoToken"))
		assert.Contains(t, r.Header.Get("User-Agent"), "noko-client/")
		fmt.Fprint(w, `[{"id":1},{"id":2}]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-token", nil)
	got, err := c.FetchJSON(context.Background(), http.MethodGet, "entries", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.Len(t, got, 2)
}

func TestFetchJSON_ThreePagePagination(t *testing.T) {
	var requests int
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch requests {
		case 1, 2:
			w.Header().Set("Link", fmt.Sprintf(`<%s/entries?page=%d>; rel="next"`, srv.URL, requests+1))
			fmt.Fprintf(w, `[{"id":%d}]`, requests)
		case 3:
			fmt.Fprint(w, `[{"id":3}]`)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", nil)
	got, err := c.FetchJSON(context.Background(), http.MethodGet, "entries", nil, Params{"billable": "true"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, requests)
	require.Len(t, got, 3)

	// Pages concatenate in response order.
	for i, raw := range got {
		var item struct {
			ID int `json:"id"`
		}
		require.NoError(t, json.Unmarshal(raw, &item))
		assert.Equal(t, i+1, item.ID)
	}
}

func TestFetchJSON_EmptyBodyReturnsNil(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", nil)
	got, err := c.FetchJSON(context.Background(), http.MethodGet, "entries/9", nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, requests)
}

func TestFetchJSON_EmptyListIsNotNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", nil)
	got, err := c.FetchJSON(context.Background(), http.MethodGet, "entries", nil, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFetchJSON_TransportErrorStopsPagination(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Link", `<http://example.invalid/next>; rel="next"`)
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"message":"validation failed"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", nil)
	got, err := c.FetchJSON(context.Background(), http.MethodGet, "entries", nil, nil, nil)
	assert.Nil(t, got)
	assert.Equal(t, 1, requests)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusUnprocessableEntity, terr.StatusCode)
	assert.Contains(t, string(terr.Body), "validation failed")
}

func TestFetchJSON_SingleObjectAppendedAsSoleElement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":42,"name":"docs"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", nil)
	got, err := c.FetchJSON(context.Background(), http.MethodGet, "tags/42", nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestFetchJSON_BodySentOnGet(t *testing.T) {
	// The wire contract serializes the body on every verb, GET included.
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", nil)
	_, err := c.FetchJSON(context.Background(), http.MethodGet, "entries", nil, nil, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(body))
}

func TestFetchJSON_QueryParameters(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", nil)
	_, err := c.FetchJSON(context.Background(), http.MethodGet, "entries", nil, Params{"from": "2024-01-01", "user_ids": "1,2"}, nil)
	require.NoError(t, err)
	assert.Contains(t, query, "from=2024-01-01")
	assert.Contains(t, query, "user_ids=1%2C2")
}

func TestListEntries_TypedDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":1,"date":"2024-01-02","minutes":60,"description":"support","billable":true}]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", nil)
	entries, err := c.ListEntries(context.Background(), GetEntriesParameters{From: "2024-01-01"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ID)
	assert.Equal(t, "2024-01-02", entries[0].Date)
	assert.Equal(t, 60, entries[0].Minutes)
	assert.True(t, entries[0].Billable)
}

func TestListEntries_ValidationFailsBeforeRequest(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", nil)
	_, err := c.ListEntries(context.Background(), GetEntriesParameters{From: "bad-date"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, requests, "no request may be sent when validation fails")
}

func TestNextLink(t *testing.T) {
	h := http.Header{}
	h.Set("Link", `<https://api.nokotime.com/v2/entries?page=3>; rel="next", <https://api.nokotime.com/v2/entries?page=9>; rel="last"`)
	assert.Equal(t, "https://api.nokotime.com/v2/entries?page=3", nextLink(h))

	h = http.Header{}
	h.Set("Link", `<https://api.nokotime.com/v2/entries?page=9>; rel="last"`)
	assert.Empty(t, nextLink(h))

	assert.Empty(t, nextLink(http.Header{}))
}
