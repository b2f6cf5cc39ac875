package restapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/character/1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"Rick Sanchez"}`))
	})
	mux.HandleFunc("/api/character/2", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"Character not found"}`, http.StatusNotFound)
	})
	mux.HandleFunc("/api/character/3", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_Success(t *testing.T) {
	srv := newServer(t)
	f := NewFetcher(domain.DatasetCharacters, srv.URL+"/api/character/")

	raw, err := f.Fetch(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.DatasetCharacters, raw.Dataset)
	assert.Equal(t, 1, raw.ID)
	assert.Equal(t, srv.URL+"/api/character/1", raw.URI)
	assert.JSONEq(t, `{"id":1,"name":"Rick Sanchez"}`, string(raw.Content))
	assert.False(t, raw.FetchedAt.IsZero())
}

func TestFetch_NotFound(t *testing.T) {
	srv := newServer(t)
	f := NewFetcher(domain.DatasetCharacters, srv.URL+"/api/character")

	raw, err := f.Fetch(context.Background(), 2)

	assert.Nil(t, raw)
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, domain.ErrFetchFailed))
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "Character not found")
}

func TestFetch_ServerError(t *testing.T) {
	srv := newServer(t)
	f := NewFetcher(domain.DatasetCharacters, srv.URL+"/api/character")

	_, err := f.Fetch(context.Background(), 3)

	assert.True(t, IsServerError(err))
	assert.False(t, IsNotFound(err))
	assert.True(t, errors.Is(err, domain.ErrFetchFailed))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "502")
}

func TestFetch_TransportError(t *testing.T) {
	srv := newServer(t)
	url := srv.URL
	srv.Close()

	f := NewFetcher(domain.DatasetPokemon, url)
	_, err := f.Fetch(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetchFailed))
	assert.False(t, IsNotFound(err))
}

func TestFetch_CancelledContext(t *testing.T) {
	srv := newServer(t)
	f := NewFetcher(domain.DatasetCharacters, srv.URL+"/api/character")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx, 1)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetch_BodyTooLarge(t *testing.T) {
	body := `{"id":1,"name":"Rick Sanchez"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	exact := NewFetcher(domain.DatasetCharacters, srv.URL, WithMaxBodySize(int64(len(body))))
	raw, err := exact.Fetch(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, body, string(raw.Content))

	small := NewFetcher(domain.DatasetCharacters, srv.URL, WithMaxBodySize(int64(len(body)-1)))
	raw, err = small.Fetch(context.Background(), 1)

	assert.Nil(t, raw)
	require.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "body exceeds")
}

func TestWithHTTPClient(t *testing.T) {
	client := &http.Client{}
	f := NewFetcher(domain.DatasetPokemon, "https://example.test", WithHTTPClient(client))

	assert.Same(t, client, f.httpClient)
	assert.Equal(t, int64(MaxBodySize), f.maxBody)
	assert.Equal(t, "https://example.test/25", f.URL(25))
	assert.Equal(t, domain.DatasetPokemon, f.Dataset())
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 500, Message: "boom", URL: "https://x/1"}
	assert.Equal(t, "restapi: API error 500: boom (URL: https://x/1)", err.Error())
}
