package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"imperial/commercial-routes/internal/constants"
	"imperial/commercial-routes/internal/logging"
)

// ProviderError wraps any failure talking to a partner service. Transport
// failures are logged where they happen and surfaced as this generic error;
// there is no retry.
type ProviderError struct {
	Code    string
	Message string
	Details string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// baseProvider carries the HTTP plumbing shared by the partner clients.
type baseProvider struct {
	BaseURL string
	Client  *http.Client
}

func newBaseProvider(baseURL string) baseProvider {
	return baseProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// doGET performs a GET request against the partner service and decodes the
// JSON response into result.
func (p *baseProvider) doGET(ctx context.Context, endpoint string, result interface{}) error {
	url := p.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		logging.Error("Could not fetch data from partner service", "url", url, "error", err.Error())
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "could not fetch data",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.Warn("Could not fetch data. Fault response code.", "url", url, "status", resp.StatusCode)
		return &ProviderError{
			Code:    constants.ErrCodeFaultResponse,
			Message: "could not fetch data",
			Details: fmt.Sprintf("status %d from %s", resp.StatusCode, url),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		logging.Error("Failed to decode partner response", "url", url, "error", err.Error())
		return &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "failed to decode response",
			Err:     err,
		}
	}

	return nil
}
