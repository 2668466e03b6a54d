package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client calls a remote popflyd instance over HTTP.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a client for the API at base, e.g. http://127.0.0.1:8080.
func NewClient(base string) *Client {
	return &Client{Base: base, HTTP: http.DefaultClient}
}

// Compute posts a computation to the remote server. Coordinate elements may
// be grid-token strings or metre numbers, same as the local engine accepts.
func (c *Client) Compute(
	ctx context.Context,
	start, end []any,
	precision int,
	faction string,
) (ComputeResponse, error) {
	payload := computeRequest{
		Start:     start,
		End:       end,
		Precision: &precision,
		Faction:   faction,
	}
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return ComputeResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/api/compute", buf)
	if err != nil {
		return ComputeResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return ComputeResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var remote struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&remote); err == nil && remote.Error != "" {
			return ComputeResponse{}, fmt.Errorf("server: %s (%s)", remote.Error, resp.Status)
		}
		return ComputeResponse{}, fmt.Errorf("server: %s", resp.Status)
	}

	var out ComputeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ComputeResponse{}, err
	}
	return out, nil
}
