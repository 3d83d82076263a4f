package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/just-nibble/commit-tracker/internal/core/domain/entities"
)

// DefaultRelayURL is the Web3Forms submission endpoint.
const DefaultRelayURL = "https://api.web3forms.com/submit"

// RelayClient posts contact forms to a third-party form relay.
type RelayClient struct {
	HTTPClient *http.Client
	URL        string
}

func NewRelayClient(endpoint string, timeout time.Duration) *RelayClient {
	if endpoint == "" {
		endpoint = DefaultRelayURL
	}
	return &RelayClient{
		HTTPClient: &http.Client{Timeout: timeout},
		URL:        endpoint,
	}
}

// Submit forwards fields verbatim and decodes the relay's verdict. The HTTP
// status is not consulted; the relay reports failures in the body.
func (c *RelayClient) Submit(ctx context.Context, fields url.Values) (*entities.RelayResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, strings.NewReader(fields.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit form: %w", err)
	}
	defer resp.Body.Close()

	var out entities.RelayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode relay response: %w", err)
	}
	return &out, nil
}
