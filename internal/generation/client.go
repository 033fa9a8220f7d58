package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// HTTPClient implements Client against the generation service's REST API.
type HTTPClient struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewHTTPClient creates a client for the generation service.
func NewHTTPClient(baseURL, apiKey string, retryAttempts uint) *HTTPClient {
	client := resty.New()
	client.SetBaseURL(baseURL)
	if apiKey != "" {
		client.SetHeader("Authorization", "Bearer "+apiKey)
	}
	client.SetHeader("Content-Type", "application/json")

	return &HTTPClient{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (client *HTTPClient) Close() error {
	return client.httpClient.Close()
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}

// GenerateCards implements the Client interface.
func (client *HTTPClient) GenerateCards(ctx context.Context, params GenerateCardsRequest) (GenerateCardsResponse, error) {
	var result GenerateCardsResponse
	if err := retry.Do(
		func() error {
			response, err := client.generateCards(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return GenerateCardsResponse{}, err
	}
	return result, nil
}

func (client *HTTPClient) generateCards(ctx context.Context, params GenerateCardsRequest) (GenerateCardsResponse, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(params).
		SetResult(&GenerateCardsResponse{}).
		Post("/v1/cards/generate")
	if err != nil {
		return GenerateCardsResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return GenerateCardsResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*GenerateCardsResponse)
	if responseBody == nil || len(responseBody.Cards) == 0 {
		return GenerateCardsResponse{}, fmt.Errorf("empty response body or cards: %s", response.String())
	}
	return *responseBody, nil
}
