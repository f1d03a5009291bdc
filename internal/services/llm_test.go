package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMClient_InvokeLLM(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Hallo! Wie kann ich helfen?"}},
			},
		})
	}))
	defer server.Close()

	client := NewLLMClient(LLMConfig{BaseURL: server.URL, APIKey: "test-key", Model: "gpt-4o-mini"})
	reply, err := client.InvokeLLM(context.Background(), "Hallo", "Du bist ein Assistent.")
	require.NoError(t, err)
	assert.Equal(t, "Hallo! Wie kann ich helfen?", reply)
}

func TestLLMClient_InvokeLLMErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "provider error message surfaced",
			status:  http.StatusTooManyRequests,
			body:    `{"error": {"message": "Rate limit reached", "type": "rate_limit_error"}}`,
			wantErr: "Rate limit reached",
		},
		{
			name:    "opaque failure",
			status:  http.StatusInternalServerError,
			body:    "upstream exploded",
			wantErr: "LLM returned 500",
		},
		{
			name:    "empty choices",
			status:  http.StatusOK,
			body:    `{"choices": []}`,
			wantErr: "no choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewLLMClient(LLMConfig{BaseURL: server.URL, APIKey: "test-key", Model: "gpt-4o-mini"})
			_, err := client.InvokeLLM(context.Background(), "Hallo", "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLLMClient_RequiresAPIKey(t *testing.T) {
	client := NewLLMClient(LLMConfig{BaseURL: "http://localhost:1", Model: "gpt-4o-mini"})
	_, err := client.InvokeLLM(context.Background(), "Hallo", "")
	require.Error(t, err, "expected an error without an API key")
}
