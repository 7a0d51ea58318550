package randomorg

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxStringLen     = 32
	maxCharsetRunes  = 128
	maxUUIDCount     = 1000
	maxBlobCount     = 100
	maxBlobTotalBits = 1 << 20
)

// Blob wire formats accepted by the service.
const (
	BlobFormatBase64 = "base64"
	BlobFormatHex    = "hex"
)

// StringParams configures GenerateStrings.
type StringParams struct {
	// N is how many strings to generate, within [1,1e4].
	N int

	// Length of each string, within [1,32].
	Length int

	// Characters is the set the strings are drawn from, at most 128 runes.
	Characters string

	// Unique requests sampling without replacement, so all N strings are
	// distinct.
	Unique bool
}

func (p StringParams) validate() error {
	if err := checkRange("n", int64(p.N), 1, maxIntegerCount); err != nil {
		return err
	}
	if err := checkRange("length", int64(p.Length), 1, maxStringLen); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(p.Characters); n < 1 || n > maxCharsetRunes {
		return &ValidationError{Param: "characters", Reason: "must contain between 1 and 128 characters"}
	}
	return nil
}

// GenerateStrings requests N true random strings drawn from the given
// character set.
func (c *Client) GenerateStrings(ctx context.Context, p StringParams) ([]string, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	params := map[string]any{
		"n":           p.N,
		"length":      p.Length,
		"characters":  p.Characters,
		"replacement": !p.Unique,
	}
	var data []string
	if err := c.generate(ctx, "generateStrings", params, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// GenerateUUIDs requests n true random version-4 UUIDs, within [1,1e3].
func (c *Client) GenerateUUIDs(ctx context.Context, n int) ([]uuid.UUID, error) {
	if err := checkRange("n", int64(n), 1, maxUUIDCount); err != nil {
		return nil, err
	}
	var data []uuid.UUID
	if err := c.generate(ctx, "generateUUIDs", map[string]any{"n": n}, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// BlobParams configures GenerateBlobs.
type BlobParams struct {
	// N is how many blobs to generate, within [1,100].
	N int

	// Size of each blob in bits. Must be within [1,2^20] and divisible
	// by 8, and N*Size must not exceed 2^20.
	Size int

	// Format is the wire encoding, BlobFormatBase64 (default) or
	// BlobFormatHex. The client decodes either into raw bytes.
	Format string
}

func (p BlobParams) validate() error {
	if err := checkRange("n", int64(p.N), 1, maxBlobCount); err != nil {
		return err
	}
	if err := checkRange("size", int64(p.Size), 1, maxBlobTotalBits); err != nil {
		return err
	}
	if p.Size%8 != 0 {
		return &ValidationError{Param: "size", Reason: "must be divisible by 8"}
	}
	if int64(p.N)*int64(p.Size) > maxBlobTotalBits {
		return &ValidationError{Param: "size", Reason: "n*size must not exceed 2^20 bits"}
	}
	switch p.Format {
	case "", BlobFormatBase64, BlobFormatHex:
		return nil
	}
	return &ValidationError{Param: "format", Reason: `must be "base64" or "hex"`}
}

// GenerateBlobs requests N true random binary blobs of Size bits each and
// returns them decoded.
func (c *Client) GenerateBlobs(ctx context.Context, p BlobParams) ([][]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	format := p.Format
	if format == "" {
		format = BlobFormatBase64
	}
	params := map[string]any{
		"n":      p.N,
		"size":   p.Size,
		"format": format,
	}
	var raw []string
	if err := c.generate(ctx, "generateBlobs", params, &raw); err != nil {
		return nil, err
	}

	out := make([][]byte, len(raw))
	for i, s := range raw {
		var (
			b   []byte
			err error
		)
		if format == BlobFormatHex {
			b, err = hex.DecodeString(s)
		} else {
			b, err = base64.StdEncoding.DecodeString(s)
		}
		if err != nil {
			return nil, &ProtocolError{Reason: "blob is not valid " + format + ": " + err.Error()}
		}
		out[i] = b
	}
	return out, nil
}
