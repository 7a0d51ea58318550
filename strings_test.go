package randomorg_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Nick-Seinsche/randomorg"
)

func TestGenerateStrings(t *testing.T) {
	var got wireRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = readRequest(t, r)
		replyGenerate(w, got.ID, `["abcde","fghij"]`, 100, 100)
	})

	values, err := client.GenerateStrings(context.Background(), randomorg.StringParams{
		N: 2, Length: 5, Characters: "abcdefghij",
	})
	if err != nil {
		t.Fatalf("GenerateStrings: %v", err)
	}
	if len(values) != 2 || values[0] != "abcde" || values[1] != "fghij" {
		t.Errorf("values = %v, want [abcde fghij]", values)
	}
	if got.Method != "generateStrings" {
		t.Errorf("method = %q, want %q", got.Method, "generateStrings")
	}
	if got.Params["characters"] != "abcdefghij" {
		t.Errorf("params.characters = %v, want the charset", got.Params["characters"])
	}
}

func TestStringParamsValidation(t *testing.T) {
	tests := []struct {
		name      string
		params    randomorg.StringParams
		wantParam string
	}{
		{"count zero", randomorg.StringParams{N: 0, Length: 5, Characters: "ab"}, "n"},
		{"length zero", randomorg.StringParams{N: 1, Length: 0, Characters: "ab"}, "length"},
		{"length too large", randomorg.StringParams{N: 1, Length: 33, Characters: "ab"}, "length"},
		{"empty charset", randomorg.StringParams{N: 1, Length: 5, Characters: ""}, "characters"},
		{"oversized charset", randomorg.StringParams{N: 1, Length: 5, Characters: strings.Repeat("x", 129)}, "characters"},
	}

	client := randomorg.New(testAPIKey)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.GenerateStrings(context.Background(), tt.params)
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

func TestGenerateUUIDs(t *testing.T) {
	var got wireRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = readRequest(t, r)
		replyGenerate(w, got.ID, `["123e4567-e89b-12d3-a456-426614174000","123e4567-e89b-12d3-a456-426614174001"]`, 100, 100)
	})

	values, err := client.GenerateUUIDs(context.Background(), 2)
	if err != nil {
		t.Fatalf("GenerateUUIDs: %v", err)
	}
	want := []uuid.UUID{
		uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		uuid.MustParse("123e4567-e89b-12d3-a456-426614174001"),
	}
	if len(values) != 2 || values[0] != want[0] || values[1] != want[1] {
		t.Errorf("values = %v, want %v", values, want)
	}
	if got.Method != "generateUUIDs" {
		t.Errorf("method = %q, want %q", got.Method, "generateUUIDs")
	}
}

func TestGenerateUUIDs_Validation(t *testing.T) {
	client := randomorg.New(testAPIKey)
	for _, n := range []int{0, 1001} {
		if _, err := client.GenerateUUIDs(context.Background(), n); err == nil {
			t.Errorf("n=%d: expected a validation error", n)
		}
	}
}

func TestGenerateUUIDs_MalformedValue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := readRequest(t, r)
		replyGenerate(w, req.ID, `["not-a-uuid"]`, 100, 100)
	})

	_, err := client.GenerateUUIDs(context.Background(), 1)
	var protoErr *randomorg.ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("got %T (%v), want *ProtocolError", err, err)
	}
}

func TestGenerateBlobs(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
		want   []byte
	}{
		{"base64", randomorg.BlobFormatBase64, `["3q2+7w=="]`, []byte{0xde, 0xad, 0xbe, 0xef}},
		{"default is base64", "", `["3q2+7w=="]`, []byte{0xde, 0xad, 0xbe, 0xef}},
		{"hex", randomorg.BlobFormatHex, `["deadbeef"]`, []byte{0xde, 0xad, 0xbe, 0xef}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got wireRequest
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				got = readRequest(t, r)
				replyGenerate(w, got.ID, tt.data, 100, 100)
			})

			blobs, err := client.GenerateBlobs(context.Background(), randomorg.BlobParams{
				N: 1, Size: 32, Format: tt.format,
			})
			if err != nil {
				t.Fatalf("GenerateBlobs: %v", err)
			}
			if len(blobs) != 1 || !bytes.Equal(blobs[0], tt.want) {
				t.Errorf("blobs = %v, want [%v]", blobs, tt.want)
			}

			wantFormat := tt.format
			if wantFormat == "" {
				wantFormat = randomorg.BlobFormatBase64
			}
			if got.Params["format"] != wantFormat {
				t.Errorf("params.format = %v, want %q", got.Params["format"], wantFormat)
			}
		})
	}
}

func TestGenerateBlobs_UndecodableValue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := readRequest(t, r)
		replyGenerate(w, req.ID, `["!!!not base64!!!"]`, 100, 100)
	})

	_, err := client.GenerateBlobs(context.Background(), randomorg.BlobParams{N: 1, Size: 32})
	var protoErr *randomorg.ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("got %T (%v), want *ProtocolError", err, err)
	}
}

func TestBlobParamsValidation(t *testing.T) {
	tests := []struct {
		name      string
		params    randomorg.BlobParams
		wantParam string
	}{
		{"count zero", randomorg.BlobParams{N: 0, Size: 64}, "n"},
		{"count too large", randomorg.BlobParams{N: 101, Size: 64}, "n"},
		{"size not byte aligned", randomorg.BlobParams{N: 1, Size: 63}, "size"},
		{"size too large", randomorg.BlobParams{N: 1, Size: 1<<20 + 8}, "size"},
		{"total over budget", randomorg.BlobParams{N: 100, Size: 1 << 15}, "size"},
		{"unknown format", randomorg.BlobParams{N: 1, Size: 64, Format: "ascii85"}, "format"},
	}

	client := randomorg.New(testAPIKey)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.GenerateBlobs(context.Background(), tt.params)
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
