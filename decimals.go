package randomorg

import (
	"context"

	"github.com/shopspring/decimal"
)

const (
	maxDecimalPlaces     = 14
	minSignificantDigits = 2
	maxSignificantDigits = 14
	gaussianLimit        = 1000000
)

// DecimalFractionParams configures GenerateDecimalFractions.
type DecimalFractionParams struct {
	// N is how many fractions to generate, within [1,1e4].
	N int

	// DecimalPlaces is the number of decimal places per fraction,
	// within [1,14].
	DecimalPlaces int

	// Unique requests sampling without replacement.
	Unique bool
}

func (p DecimalFractionParams) validate() error {
	if err := checkRange("n", int64(p.N), 1, maxIntegerCount); err != nil {
		return err
	}
	return checkRange("decimalPlaces", int64(p.DecimalPlaces), 1, maxDecimalPlaces)
}

// GenerateDecimalFractions requests N true random fractions from the
// uniform [0,1) interval. Results are exact decimals so a fraction with a
// fixed number of places survives the round trip without float rounding.
func (c *Client) GenerateDecimalFractions(ctx context.Context, p DecimalFractionParams) ([]decimal.Decimal, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	params := map[string]any{
		"n":             p.N,
		"decimalPlaces": p.DecimalPlaces,
		"replacement":   !p.Unique,
	}
	var data []decimal.Decimal
	if err := c.generate(ctx, "generateDecimalFractions", params, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// GaussianParams configures GenerateGaussians.
type GaussianParams struct {
	// N is how many numbers to generate, within [1,1e4].
	N int

	// Mean of the distribution, within [-1e6,1e6].
	Mean float64

	// StandardDeviation of the distribution, within [-1e6,1e6].
	StandardDeviation float64

	// SignificantDigits per number, within [2,14].
	SignificantDigits int
}

func (p GaussianParams) validate() error {
	if err := checkRange("n", int64(p.N), 1, maxIntegerCount); err != nil {
		return err
	}
	if p.Mean < -gaussianLimit || p.Mean > gaussianLimit {
		return &ValidationError{Param: "mean", Reason: "must be within [-1e6,1e6]"}
	}
	if p.StandardDeviation < -gaussianLimit || p.StandardDeviation > gaussianLimit {
		return &ValidationError{Param: "standardDeviation", Reason: "must be within [-1e6,1e6]"}
	}
	return checkRange("significantDigits", int64(p.SignificantDigits), minSignificantDigits, maxSignificantDigits)
}

// GenerateGaussians requests N true random numbers from a Gaussian
// distribution with the given mean and standard deviation.
func (c *Client) GenerateGaussians(ctx context.Context, p GaussianParams) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	params := map[string]any{
		"n":                 p.N,
		"mean":              p.Mean,
		"standardDeviation": p.StandardDeviation,
		"significantDigits": p.SignificantDigits,
	}
	var data []float64
	if err := c.generate(ctx, "generateGaussians", params, &data); err != nil {
		return nil, err
	}
	return data, nil
}
