// Package randomorg is a client for the RANDOM.ORG Basic API.
//
// The Basic API is a JSON-RPC service that generates true random values
// from atmospheric noise. This package wraps each API method with a typed
// Go method and never generates randomness locally:
//
//	client := randomorg.New(apiKey)
//	ints, err := client.GenerateIntegers(ctx, randomorg.IntegerParams{
//	    N: 5, Min: 1, Max: 100,
//	})
//
// Every call is an independent, synchronous request. The client holds no
// state between calls beyond the API key and a cached copy of the most
// recent quota counters (see LastQuota).
package randomorg

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DefaultEndpoint is the RANDOM.ORG Basic API invocation URL.
const DefaultEndpoint = "https://api.random.org/json-rpc/4/invoke"

// apiVersion is the protocol version tag sent in every request envelope.
const apiVersion = "4.0"

// defaultTimeout bounds a single API call when the caller supplies neither
// an http.Client nor a context deadline.
const defaultTimeout = 30 * time.Second

// Client talks to the RANDOM.ORG Basic API. It is safe for concurrent use;
// concurrent calls get distinct request IDs and share only the immutable
// API key and the quota snapshot.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	log        zerolog.Logger

	// Warn thresholds. Zero disables the corresponding warning.
	warnBits     int64
	warnRequests int64

	nextID atomic.Int64

	mu           sync.Mutex
	bitsLeft     int64
	requestsLeft int64
	haveQuota    bool
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint URL. Useful for tests and for
// pinning a different API version.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-call timeout on the owned HTTP client. It is
// ignored when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.httpClient != nil {
			return
		}
		c.httpClient = &http.Client{Timeout: d}
	}
}

// WithLogger sets the logger. The default discards everything. The API key
// is never logged.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithQuotaWarnings emits a warning log line whenever a response reports
// fewer remaining bits or requests than the given thresholds. Zero disables
// the corresponding check.
func WithQuotaWarnings(bits, requests int64) Option {
	return func(c *Client) {
		c.warnBits = bits
		c.warnRequests = requests
	}
}

// New creates a Client for the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		endpoint: DefaultEndpoint,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return c
}

// LastQuota returns the bitsLeft/requestsLeft counters from the most recent
// response, if any call has completed yet. It never contacts the service;
// use GetUsage for an authoritative snapshot.
func (c *Client) LastQuota() (bitsLeft, requestsLeft int64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bitsLeft, c.requestsLeft, c.haveQuota
}

// recordQuota caches the latest counters and emits low-quota warnings.
func (c *Client) recordQuota(bitsLeft, requestsLeft int64) {
	c.mu.Lock()
	c.bitsLeft = bitsLeft
	c.requestsLeft = requestsLeft
	c.haveQuota = true
	c.mu.Unlock()

	if c.warnBits > 0 && bitsLeft < c.warnBits {
		c.log.Warn().
			Int64("bits_left", bitsLeft).
			Int64("threshold", c.warnBits).
			Msg("low bit quota")
	}
	if c.warnRequests > 0 && requestsLeft < c.warnRequests {
		c.log.Warn().
			Int64("requests_left", requestsLeft).
			Int64("threshold", c.warnRequests).
			Msg("low request quota")
	}
}
