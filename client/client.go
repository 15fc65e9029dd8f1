// Package client is a typed HTTP client for the Megahand API with a built-in
// read cache. Reads are keyed by route path, concurrent fetches for the same
// key are collapsed into one request, and mutations invalidate exactly the
// keys whose results could have changed, triggering a background refetch.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Client wraps http.Client with a per-key response cache.
type Client struct {
	http.Client
	BaseURL string

	group singleflight.Group

	mu    sync.Mutex
	cache map[string]*entry
	// gen counts invalidations per key; a fetch may only write its result
	// into the cache if no invalidation happened after it started.
	gen  map[string]uint64
	subs map[string][]chan struct{}
}

type entry struct {
	data      []byte
	fetchedAt time.Time
}

// New creates a Client for the given base URL. The cookie jar carries the
// session cookie across requests, so Login applies to later mutations.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	c := &Client{
		BaseURL: baseURL,
		cache:   make(map[string]*entry),
		gen:     make(map[string]uint64),
		subs:    make(map[string][]chan struct{}),
	}
	c.Jar = jar
	return c, nil
}

// apiError is the decoded {"message": ...} body of a non-2xx response.
type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an API error with the given status code.
func IsStatus(err error, code int) bool {
	apiErr, ok := err.(*apiError)
	return ok && apiErr.StatusCode == code
}

// Get returns the body for a route path, serving from cache when possible.
// Concurrent callers for the same key share a single upstream request.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	if e, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return e.data, nil
	}
	gen := c.gen[key]
	c.mu.Unlock()

	data, err, _ := c.group.Do(key, func() (any, error) {
		body, err := c.do(ctx, http.MethodGet, key, nil)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		// A response computed before an invalidation must not land in the
		// cache; the caller still receives it, the next Get refetches.
		if c.gen[key] == gen {
			c.cache[key] = &entry{data: body, fetchedAt: time.Now()}
		}
		c.mu.Unlock()
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return data.([]byte), nil
}

// Invalidate drops the given keys from the cache, refetches each in the
// background and notifies subscribers once fresh data has landed. Fetches
// already in flight are detached from the keys so their pre-mutation
// responses cannot repopulate the cache.
func (c *Client) Invalidate(keys ...string) {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.cache, key)
		c.gen[key]++
	}
	c.mu.Unlock()

	for _, key := range keys {
		c.group.Forget(key)
	}

	for _, key := range keys {
		go func(key string) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			// A failed refetch leaves the key empty; the next Get retries.
			c.Get(ctx, key)
			c.notify(key)
		}(key)
	}
}

// Subscribe returns a channel that receives a signal whenever the key is
// refetched after invalidation. The channel is buffered; a slow consumer
// coalesces signals instead of blocking the client.
func (c *Client) Subscribe(key string) <-chan struct{} {
	ch := make(chan struct{}, 1)
	c.mu.Lock()
	c.subs[key] = append(c.subs[key], ch)
	c.mu.Unlock()
	return ch
}

func (c *Client) notify(key string) {
	c.mu.Lock()
	subs := c.subs[key]
	c.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// do issues a request and returns the body, decoding the server's error
// message on a non-2xx status.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &msg) != nil || msg.Message == "" {
			msg.Message = http.StatusText(resp.StatusCode)
		}
		return nil, &apiError{StatusCode: resp.StatusCode, Message: msg.Message}
	}
	return data, nil
}

// getJSON fetches a cached route and decodes it into v.
func (c *Client) getJSON(ctx context.Context, key string, v any) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
