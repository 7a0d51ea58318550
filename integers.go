package randomorg

import (
	"context"
	"fmt"
	"strconv"
)

// Documented bounds of the Basic API integer methods.
const (
	maxIntegerCount  = 10000
	maxSequenceCount = 1000
	maxSequenceLen   = 10000
	minIntegerValue  = -1000000000
	maxIntegerValue  = 1000000000
)

// IntegerParams configures GenerateIntegers.
type IntegerParams struct {
	// N is how many integers to generate, within [1,1e4].
	N int

	// Min and Max bound the generated values inclusively. Both must lie
	// within [-1e9,1e9] and Min must not exceed Max.
	Min, Max int64

	// Unique requests sampling without replacement, so all N values are
	// distinct. The zero value samples with replacement, the API default.
	Unique bool

	// Base is the positional base the service uses to encode the values:
	// 2, 8, 10 or 16. Zero means 10. Values in other bases arrive as digit
	// strings on the wire; the client parses them back to int64.
	Base int
}

func (p IntegerParams) validate() error {
	if err := checkRange("n", int64(p.N), 1, maxIntegerCount); err != nil {
		return err
	}
	if err := checkIntegerBounds(p.Min, p.Max); err != nil {
		return err
	}
	return checkBase(p.Base)
}

// GenerateIntegers requests N true random integers in [Min,Max].
func (c *Client) GenerateIntegers(ctx context.Context, p IntegerParams) ([]int64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	base := p.Base
	if base == 0 {
		base = 10
	}
	params := map[string]any{
		"n":           p.N,
		"min":         p.Min,
		"max":         p.Max,
		"replacement": !p.Unique,
		"base":        base,
	}

	if base == 10 {
		var data []int64
		if err := c.generate(ctx, "generateIntegers", params, &data); err != nil {
			return nil, err
		}
		return data, nil
	}

	// Non-decimal bases come back as digit strings.
	var raw []string
	if err := c.generate(ctx, "generateIntegers", params, &raw); err != nil {
		return nil, err
	}
	return parseIntegers(raw, base)
}

// SequenceParams configures GenerateIntegerSequences. All N sequences share
// the same length, bounds, and base (the API's uniform form).
type SequenceParams struct {
	// N is how many sequences to generate, within [1,1e3].
	N int

	// Length is the number of integers per sequence, within [1,1e4].
	Length int

	// Min and Max bound the values in every sequence, within [-1e9,1e9].
	Min, Max int64

	// Unique requests sampling without replacement within each sequence.
	Unique bool

	// Base as in IntegerParams.
	Base int
}

func (p SequenceParams) validate() error {
	if err := checkRange("n", int64(p.N), 1, maxSequenceCount); err != nil {
		return err
	}
	if err := checkRange("length", int64(p.Length), 1, maxSequenceLen); err != nil {
		return err
	}
	if err := checkIntegerBounds(p.Min, p.Max); err != nil {
		return err
	}
	return checkBase(p.Base)
}

// GenerateIntegerSequences requests N sequences of Length true random
// integers each, every value in [Min,Max].
func (c *Client) GenerateIntegerSequences(ctx context.Context, p SequenceParams) ([][]int64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	base := p.Base
	if base == 0 {
		base = 10
	}
	params := map[string]any{
		"n":           p.N,
		"length":      p.Length,
		"min":         p.Min,
		"max":         p.Max,
		"replacement": !p.Unique,
		"base":        base,
	}

	if base == 10 {
		var data [][]int64
		if err := c.generate(ctx, "generateIntegerSequences", params, &data); err != nil {
			return nil, err
		}
		return data, nil
	}

	var raw [][]string
	if err := c.generate(ctx, "generateIntegerSequences", params, &raw); err != nil {
		return nil, err
	}
	out := make([][]int64, len(raw))
	for i, seq := range raw {
		parsed, err := parseIntegers(seq, base)
		if err != nil {
			return nil, err
		}
		out[i] = parsed
	}
	return out, nil
}

func parseIntegers(raw []string, base int) ([]int64, error) {
	out := make([]int64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseInt(s, base, 64)
		if err != nil {
			return nil, &ProtocolError{Reason: fmt.Sprintf("value %q is not a base-%d integer", s, base)}
		}
		out[i] = v
	}
	return out, nil
}

func checkIntegerBounds(min, max int64) error {
	if err := checkRange("min", min, minIntegerValue, maxIntegerValue); err != nil {
		return err
	}
	if err := checkRange("max", max, minIntegerValue, maxIntegerValue); err != nil {
		return err
	}
	if min > max {
		return &ValidationError{Param: "min", Reason: "must not exceed max"}
	}
	return nil
}

func checkBase(base int) error {
	switch base {
	case 0, 2, 8, 10, 16:
		return nil
	}
	return &ValidationError{Param: "base", Reason: "must be 2, 8, 10 or 16"}
}

// checkRange rejects v outside [lo,hi].
func checkRange(param string, v, lo, hi int64) error {
	if v < lo || v > hi {
		return &ValidationError{
			Param:  param,
			Reason: fmt.Sprintf("must be within [%d,%d], got %d", lo, hi, v),
		}
	}
	return nil
}
