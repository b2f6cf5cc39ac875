package restapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/corpuschat/internal/core/domain"
	"github.com/custodia-labs/corpuschat/internal/core/ports/driven"
	"github.com/custodia-labs/corpuschat/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxBodySize is the default limit on a response body.
	// Larger bodies fail the fetch.
	MaxBodySize = 4 << 20

	userAgent = "corpuschat"
)

// Ensure Fetcher implements the interface.
var _ driven.RecordFetcher = (*Fetcher)(nil)

// Fetcher retrieves records with one GET per identifier.
type Fetcher struct {
	dataset    domain.Dataset
	baseURL    string
	httpClient *http.Client
	maxBody    int64
	now        func() time.Time
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = c
	}
}

// WithTimeout sets the request timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.httpClient = &http.Client{Timeout: d}
	}
}

// WithMaxBodySize sets the largest response body accepted.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// NewFetcher creates a fetcher for dataset reading from baseURL.
func NewFetcher(dataset domain.Dataset, baseURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		dataset:    dataset,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		maxBody:    MaxBodySize,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Dataset returns the dataset this fetcher reads.
func (f *Fetcher) Dataset() domain.Dataset {
	return f.dataset
}

// URL returns the request URL for id.
func (f *Fetcher) URL(id int) string {
	return f.baseURL + "/" + strconv.Itoa(id)
}

// Fetch retrieves the record with the given identifier.
func (f *Fetcher) Fetch(ctx context.Context, id int) (*domain.RawRecord, error) {
	url := f.URL(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	logger.Debug("GET %s", url)
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w: %w", url, domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", url, domain.ErrFetchFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    summarise(body, resp.Status),
			URL:        url,
		}
	}
	if int64(len(body)) > f.maxBody {
		return nil, fmt.Errorf("read %s: %w: body exceeds %d bytes", url, domain.ErrFetchFailed, f.maxBody)
	}

	return &domain.RawRecord{
		Dataset:   f.dataset,
		ID:        id,
		URI:       url,
		Content:   body,
		FetchedAt: f.now(),
	}, nil
}

func summarise(body []byte, fallback string) string {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fallback
	}
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}
