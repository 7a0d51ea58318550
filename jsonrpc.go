package randomorg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// rpcRequest is the JSON-RPC envelope the Basic API expects.
type rpcRequest struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
	ID      int64          `json:"id"`
}

// rpcResponse mirrors rpcRequest. Exactly one of Result and Error is set.
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcErrorBody   `json:"error"`
	ID      int64           `json:"id"`
}

type rpcErrorBody struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// randomPayload is the result.random object common to all generation
// methods. Data stays raw so each method can decode its own element type.
type randomPayload struct {
	Data           json.RawMessage `json:"data"`
	CompletionTime string          `json:"completionTime"`
}

// generateResult is the result object common to all generation methods.
type generateResult struct {
	Random        randomPayload `json:"random"`
	BitsUsed      int64         `json:"bitsUsed"`
	BitsLeft      int64         `json:"bitsLeft"`
	RequestsLeft  int64         `json:"requestsLeft"`
	AdvisoryDelay int64         `json:"advisoryDelay"`
}

// call performs one JSON-RPC round trip: build the envelope, POST it,
// decode the response, and map failures onto the error taxonomy. The API
// key is injected into params here so individual methods never handle it.
func (c *Client) call(ctx context.Context, method string, params map[string]any, result any) error {
	if params == nil {
		params = map[string]any{}
	}
	params["apiKey"] = c.apiKey

	id := c.nextID.Add(1)
	body, err := json.Marshal(rpcRequest{
		JSONRPC: apiVersion,
		Method:  method,
		Params:  params,
		ID:      id,
	})
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProtocolError{Reason: fmt.Sprintf("unexpected HTTP status %d", resp.StatusCode)}
	}

	var envelope rpcResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return &ProtocolError{Reason: "unparseable response body: " + err.Error()}
	}
	if envelope.Error != nil {
		return &RemoteError{Code: envelope.Error.Code, Message: envelope.Error.Message}
	}
	if envelope.ID != id {
		return &ProtocolError{Reason: fmt.Sprintf("response id %d does not match request id %d", envelope.ID, id)}
	}
	if envelope.Result == nil {
		return &ProtocolError{Reason: "response carries neither result nor error"}
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return &ProtocolError{Reason: "unexpected result shape: " + err.Error()}
	}
	return nil
}

// generate runs the shared pipeline for every generation method: call,
// decode result.random.data into out, cache the quota counters, and log.
func (c *Client) generate(ctx context.Context, method string, params map[string]any, out any) error {
	var res generateResult
	if err := c.call(ctx, method, params, &res); err != nil {
		return err
	}
	if res.Random.Data == nil {
		return &ProtocolError{Reason: "result is missing random data"}
	}
	if err := json.Unmarshal(res.Random.Data, out); err != nil {
		return &ProtocolError{Reason: "unexpected random data shape: " + err.Error()}
	}

	c.recordQuota(res.BitsLeft, res.RequestsLeft)
	c.log.Debug().
		Str("method", method).
		Int64("bits_used", res.BitsUsed).
		Int64("bits_left", res.BitsLeft).
		Int64("requests_left", res.RequestsLeft).
		Msg("request complete")
	return nil
}
