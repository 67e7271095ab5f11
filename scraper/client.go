package scraper

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/viper"
)

// Client is the HTTP client shared by the non-browser adapters. Every fetch
// carries the configured user agent and is bounded by the configured
// timeout in addition to the caller's context.
type Client struct {
	http      *http.Client
	userAgent string
}

func NewClient() *Client {
	timeout := viper.GetInt("scrape.timeoutSeconds")
	if timeout <= 0 {
		timeout = 30
	}

	ua := viper.GetString("scrape.userAgent")
	if ua == "" {
		ua = UserAgent
	}

	return &Client{
		http:      &http.Client{Timeout: time.Duration(timeout) * time.Second},
		userAgent: ua,
	}
}

// Get performs a GET request. Non-2xx responses are closed and reported as
// a FetchError.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}
	return resp, nil
}

// GetJSON fetches url and decodes the body as arbitrary JSON, suitable for
// navigation with Nav.
func (c *Client) GetJSON(ctx context.Context, url string) (any, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, &ParseError{Reason: "invalid json", Err: err}
	}
	return doc, nil
}

// GetHTML fetches url and parses the body into a goquery document.
func (c *Client) GetHTML(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &ParseError{Reason: "invalid html", Err: err}
	}
	return doc, nil
}

// GetString fetches url and returns the body as a string.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	return string(body), nil
}
