package randomorg_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Nick-Seinsche/randomorg"
)

func TestGenerateDecimalFractions(t *testing.T) {
	var got wireRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = readRequest(t, r)
		replyGenerate(w, got.ID, "[0.12,0.34]", 100, 100)
	})

	values, err := client.GenerateDecimalFractions(context.Background(), randomorg.DecimalFractionParams{
		N: 2, DecimalPlaces: 2,
	})
	if err != nil {
		t.Fatalf("GenerateDecimalFractions: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("got %d values, want 2", len(values))
	}

	// Exact decimal comparison, not float comparison.
	want := []decimal.Decimal{
		decimal.RequireFromString("0.12"),
		decimal.RequireFromString("0.34"),
	}
	for i, v := range values {
		if !v.Equal(want[i]) {
			t.Errorf("values[%d] = %s, want %s", i, v, want[i])
		}
	}

	if got.Method != "generateDecimalFractions" {
		t.Errorf("method = %q, want %q", got.Method, "generateDecimalFractions")
	}
	if got.Params["decimalPlaces"] != float64(2) {
		t.Errorf("params.decimalPlaces = %v, want 2", got.Params["decimalPlaces"])
	}
}

func TestDecimalFractionParamsValidation(t *testing.T) {
	tests := []struct {
		name      string
		params    randomorg.DecimalFractionParams
		wantParam string
	}{
		{"count zero", randomorg.DecimalFractionParams{N: 0, DecimalPlaces: 2}, "n"},
		{"places zero", randomorg.DecimalFractionParams{N: 1, DecimalPlaces: 0}, "decimalPlaces"},
		{"places too large", randomorg.DecimalFractionParams{N: 1, DecimalPlaces: 15}, "decimalPlaces"},
	}

	client := randomorg.New(testAPIKey)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.GenerateDecimalFractions(context.Background(), tt.params)
			var vErr *randomorg.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("got %T (%v), want *ValidationError", err, err)
			}
			if vErr.Param != tt.wantParam {
				t.Errorf("Param = %q, want %q", vErr.Param, tt.wantParam)
			}
		})
	}
}

func TestGenerateGaussians(t *testing.T) {
	var got wireRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = readRequest(t, r)
		replyGenerate(w, got.ID, "[0.123,-0.456]", 100, 100)
	})

	values, err := client.GenerateGaussians(context.Background(), randomorg.GaussianParams{
		N: 2, Mean: 0, StandardDeviation: 1, SignificantDigits: 5,
	})
	if err != nil {
		t.Fatalf("GenerateGaussians: %v", err)
	}
	if len(values) != 2 || values[0] != 0.123 || values[1] != -0.456 {
		t.Errorf("values = %v, want [0.123 -0.456]", values)
	}
	if got.Params["standardDeviation"] != float64(1) {
		t.Errorf("params.standardDeviation = %v, want 1", got.Params["standardDeviation"])
	}
	if got.Params["significantDigits"] != float64(5) {
		t.Errorf("params.significantDigits = %v, want 5", got.Params["significantDigits"])
	}
}

func TestGaussianParamsValidation(t *testing.T) {
	tests := []struct {
		name      string
		params    randomorg.GaussianParams
		wantParam string
	}{
		{"count zero", randomorg.GaussianParams{N: 0, StandardDeviation: 1, SignificantDigits: 4}, "n"},
		{"mean out of range", randomorg.GaussianParams{N: 1, Mean: 1000001, StandardDeviation: 1, SignificantDigits: 4}, "mean"},
		{"stddev out of range", randomorg.GaussianParams{N: 1, StandardDeviation: -1000001, SignificantDigits: 4}, "standardDeviation"},
		{"digits too few", randomorg.GaussianParams{N: 1, StandardDeviation: 1, SignificantDigits: 1}, "significantDigits"},
		{"digits too many", randomorg.GaussianParams{N: 1, StandardDeviation: 1, SignificantDigits: 15}, "significantDigits"},
	}

	client := randomorg.New(testAPIKey)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.GenerateGaussians(context.Background(), tt.params)
			var vErr *randomorg.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("got %T (%v), want *ValidationError", err, err)
			}
			if vErr.Param != tt.wantParam {
				t.Errorf("Param = %q, want %q", vErr.Param, tt.wantParam)
			}
		})
	}
}
