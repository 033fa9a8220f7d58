package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"
)

func TestHTTPClient_GenerateCards(t *testing.T) {
	tests := []struct {
		name              string
		request           GenerateCardsRequest
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		wantResponse    GenerateCardsResponse
		wantError       bool
		wantErrorString string
	}{
		{
			name: "success",
			request: GenerateCardsRequest{
				Topic:     "JLPT N2 grammar",
				CardCount: 2,
			},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/v1/cards/generate", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

				var reqBody GenerateCardsRequest
				err := json.NewDecoder(r.Body).Decode(&reqBody)
				require.NoError(t, err)
				assert.Equal(t, "JLPT N2 grammar", reqBody.Topic)
				assert.Equal(t, 2, reqBody.CardCount)

				w.Header().Set("Content-Type", "application/json")
				err = json.NewEncoder(w).Encode(GenerateCardsResponse{
					Cards: []CardSuggestion{
						{Front: "〜ばかりに", Back: "just because", Tags: []string{"grammar"}},
						{Front: "〜わりに", Back: "considering"},
					},
				})
				require.NoError(t, err)
			},
			wantResponse: GenerateCardsResponse{
				Cards: []CardSuggestion{
					{Front: "〜ばかりに", Back: "just because", Tags: []string{"grammar"}},
					{Front: "〜わりに", Back: "considering"},
				},
			},
		},
		{
			name:    "client error is not retried",
			request: GenerateCardsRequest{Topic: "x", CardCount: 1},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error": "topic too short"}`))
			},
			wantError:       true,
			wantErrorString: "response error 400",
		},
		{
			name:    "empty card list",
			request: GenerateCardsRequest{Topic: "x", CardCount: 1},
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"cards": []}`))
			},
			wantError:       true,
			wantErrorString: "empty response body or cards",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handlerCalls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&handlerCalls, 1)
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := &HTTPClient{
				httpClient: resty.New().
					SetBaseURL(server.URL).
					SetHeader("Content-Type", "application/json").
					SetHeader("Authorization", "Bearer test-key"),
				maxRetryAttempts: 2,
			}
			defer client.Close()

			got, err := client.GenerateCards(context.Background(), tt.request)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
				// unrecoverable errors stop after the first call
				assert.Equal(t, int32(1), atomic.LoadInt32(&handlerCalls))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantResponse, got)
		})
	}
}

func TestHTTPClient_GenerateCards_RetriesServerErrors(t *testing.T) {
	var handlerCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&handlerCalls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cards": [{"front": "f", "back": "b"}]}`))
	}))
	defer server.Close()

	client := &HTTPClient{
		httpClient:       resty.New().SetBaseURL(server.URL).SetHeader("Content-Type", "application/json"),
		maxRetryAttempts: 3,
	}
	defer client.Close()

	got, err := client.GenerateCards(context.Background(), GenerateCardsRequest{Topic: "x", CardCount: 1})
	require.NoError(t, err)
	require.Len(t, got.Cards, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&handlerCalls))
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "server error", err: errString("response error 503: unavailable"), want: true},
		{name: "rate limited", err: errString("response error 429: slow down"), want: true},
		{name: "connection refused", err: errString("dial tcp: connection refused"), want: true},
		{name: "client error", err: errString("response error 400: bad request"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

type errString string

func (e errString) Error() string { return string(e) }
