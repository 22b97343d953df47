package apod

import (
	"context"

	"github.com/stellarview/apod/internal/httpclient"
	"github.com/stellarview/apod/internal/logging"
)

// DefaultBaseURL is the production APOD endpoint.
const DefaultBaseURL = "https://api.nasa.gov/planetary/apod"

// Client fetches entries from the APOD API. One synchronous request per
// call; no retry, no backoff.
type Client struct {
	http    *httpclient.Client
	baseURL string
	apiKey  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different endpoint. Tests use this to
// target an httptest server.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *httpclient.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a Client using the given API key and request timeout in
// seconds (zero means the default).
func NewClient(apiKey string, timeoutSeconds float64, opts ...ClientOption) *Client {
	c := &Client{
		http:    httpclient.NewFromConfig(timeoutSeconds),
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// entryResponse is the wire shape of a single-date APOD response. Copyright
// and hdurl are absent for many dates; the conversion to Entry applies the
// documented defaults.
type entryResponse struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Copyright   string `json:"copyright"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl"`
}

func (r entryResponse) toEntry() Entry {
	e := Entry{
		Date:        r.Date,
		Title:       r.Title,
		Explanation: r.Explanation,
		Copyright:   r.Copyright,
		MediaType:   r.MediaType,
		URL:         r.URL,
		HDURL:       r.HDURL,
	}
	if e.Copyright == "" {
		e.Copyright = DefaultCopyright
	}
	return e
}

// Fetch retrieves the entry for a calendar date (YYYY-MM-DD). The date is
// passed to the service as-is: range and format policing are the service's
// job, and its rejections come back as FetchErrors like any other failure.
// Success requires a 200 status and a body that decodes with a date field;
// anything else returns a *FetchError tagged with the failure kind.
func (c *Client) Fetch(ctx context.Context, date string) (Entry, error) {
	logger := logging.FromContext(ctx)

	var wire entryResponse
	resp, err := c.http.GetJSONCtx(ctx, c.baseURL, &wire,
		httpclient.WithQuery("date", date),
		httpclient.WithQuery("api_key", c.apiKey),
	)
	if err != nil {
		return Entry{}, &FetchError{Kind: FailTransport, Date: date, Err: err}
	}

	logger.Debug("apod response", "date", date, "status", resp.StatusCode,
		"body", httpclient.SummarizeBody(resp.Body))

	if resp.StatusCode != 200 {
		return Entry{}, &FetchError{
			Kind:       FailStatus,
			Date:       date,
			StatusCode: resp.StatusCode,
			Detail:     httpclient.SummarizeBody(resp.Body),
		}
	}
	if resp.JSONErr != nil {
		return Entry{}, &FetchError{Kind: FailMalformed, Date: date, Err: resp.JSONErr}
	}
	if wire.Date == "" {
		return Entry{}, &FetchError{Kind: FailMalformed, Date: date, Detail: "response has no date field"}
	}

	return wire.toEntry(), nil
}
