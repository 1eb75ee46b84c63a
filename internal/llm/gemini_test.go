package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centradial/centradial/internal/common"
)

func geminiTextResponse(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]any{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func newTestGeminiClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := newGeminiClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return client
}

func TestNewGeminiClient(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := newGeminiClient(Config{})
		require.Error(t, err)
	})

	t.Run("valid config", func(t *testing.T) {
		client, err := newGeminiClient(Config{APIKey: "k"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestGeminiExtractMessages(t *testing.T) {
	t.Run("returns ordered sentences", func(t *testing.T) {
		client := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Contains(t, body, "contents")

			_, _ = w.Write([]byte(geminiTextResponse(`["First message", "Second message"]`)))
		})

		sentences, err := client.ExtractMessages(context.Background(), []byte("fake-png"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, []string{"First message", "Second message"}, sentences)
	})

	t.Run("malformed model output degrades to empty", func(t *testing.T) {
		client := newTestGeminiClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(geminiTextResponse("sorry, no conversation found")))
		})

		sentences, err := client.ExtractMessages(context.Background(), []byte("x"), "text/plain")
		require.NoError(t, err)
		assert.Empty(t, sentences)
	})

	t.Run("api error surfaces as ExtractionFailed", func(t *testing.T) {
		client := newTestGeminiClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		})

		_, err := client.ExtractMessages(context.Background(), []byte("x"), "text/plain")
		assert.ErrorIs(t, err, common.ErrExtractionFailed)
	})
}

func TestGeminiAssessSentence(t *testing.T) {
	t.Run("valid assessment", func(t *testing.T) {
		client := newTestGeminiClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(geminiTextResponse(`{
				"sentence": "Wire the fee today or the offer expires",
				"pressureLevel": "High",
				"urgencyScore": 8.5,
				"manipulationPattern": "Artificial deadline",
				"riskExplanation": "A real institution will not vanish overnight.",
				"protectiveAction": "Verify through an official channel first.",
				"scamType": "Advance fee"
			}`)))
		})

		record, err := client.AssessSentence(context.Background(), "Wire the fee today or the offer expires")
		require.NoError(t, err)
		assert.Equal(t, "Advance fee", record.ScamType)
		assert.Equal(t, 8.5, record.UrgencyScore)
	})

	t.Run("missing field is a hard failure", func(t *testing.T) {
		client := newTestGeminiClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(geminiTextResponse(`{
				"sentence": "s",
				"pressureLevel": "Low",
				"urgencyScore": 1,
				"manipulationPattern": "p",
				"riskExplanation": "e",
				"protectiveAction": "a"
			}`)))
		})

		_, err := client.AssessSentence(context.Background(), "s")
		assert.ErrorIs(t, err, common.ErrAssessmentMalformed)
	})

	t.Run("empty candidates is an error", func(t *testing.T) {
		client := newTestGeminiClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"candidates": []}`))
		})

		_, err := client.AssessSentence(context.Background(), "s")
		require.Error(t, err)
	})
}

func TestFactory(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantErr  bool
	}{
		{"gemini", "gemini", false},
		{"anthropic", "anthropic", false},
		{"default is gemini", "", false},
		{"case insensitive", "Anthropic", false},
		{"unknown", "openai-compat", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(Config{Provider: tt.provider, APIKey: "k"})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}
