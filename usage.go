package randomorg

import (
	"context"
	"time"
)

// usageTimeLayout is the timestamp format the service uses, e.g.
// "2013-02-01 17:53:40Z".
const usageTimeLayout = "2006-01-02 15:04:05Z07:00"

// Usage is a snapshot of the account's quota as reported by getUsage.
type Usage struct {
	// Status is "running" or "paused".
	Status string

	// CreationTime is when the API key was created. Zero if the service
	// sent a timestamp the client could not parse.
	CreationTime time.Time

	// BitsLeft and RequestsLeft are the remaining daily allowances.
	BitsLeft     int64
	RequestsLeft int64

	// TotalBits and TotalRequests are lifetime counters for the key.
	TotalBits     int64
	TotalRequests int64
}

// GetUsage fetches the current quota snapshot for the client's API key.
// It consumes a request from the quota but no bits.
func (c *Client) GetUsage(ctx context.Context) (*Usage, error) {
	var res struct {
		Status        string `json:"status"`
		CreationTime  string `json:"creationTime"`
		BitsLeft      int64  `json:"bitsLeft"`
		RequestsLeft  int64  `json:"requestsLeft"`
		TotalBits     int64  `json:"totalBits"`
		TotalRequests int64  `json:"totalRequests"`
	}
	if err := c.call(ctx, "getUsage", nil, &res); err != nil {
		return nil, err
	}

	c.recordQuota(res.BitsLeft, res.RequestsLeft)
	c.log.Debug().
		Str("status", res.Status).
		Int64("bits_left", res.BitsLeft).
		Int64("requests_left", res.RequestsLeft).
		Msg("usage fetched")

	usage := &Usage{
		Status:        res.Status,
		BitsLeft:      res.BitsLeft,
		RequestsLeft:  res.RequestsLeft,
		TotalBits:     res.TotalBits,
		TotalRequests: res.TotalRequests,
	}
	// Metadata only; a missing or odd timestamp is not worth failing over.
	if t, err := time.Parse(usageTimeLayout, res.CreationTime); err == nil {
		usage.CreationTime = t
	}
	return usage, nil
}
