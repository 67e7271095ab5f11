package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient()
	body, err := c.GetString(context.Background(), srv.URL)
	assert.Nil(t, err)
	assert.Equal(t, "ok", body)
	assert.Equal(t, UserAgent, gotUA)
}

func TestClientNon2xxIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient()
	_, err := c.Get(context.Background(), srv.URL)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
}

func TestClientGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"title": "hello"}}`))
	}))
	defer srv.Close()

	c := NewClient()
	doc, err := c.GetJSON(context.Background(), srv.URL)
	assert.Nil(t, err)

	title, err := NavString(doc, "data", "title")
	assert.Nil(t, err)
	assert.Equal(t, "hello", title)
}

func TestClientGetJSONInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient()
	_, err := c.GetJSON(context.Background(), srv.URL)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestClientGetHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>a page</title></head><body></body></html>`))
	}))
	defer srv.Close()

	c := NewClient()
	doc, err := c.GetHTML(context.Background(), srv.URL)
	assert.Nil(t, err)
	assert.Equal(t, "a page", doc.Find("title").Text())
}
