package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/financegpt/internal/model/assistant"
)

type testConfig struct {
	url string
}

func (c testConfig) ApiKey() string   { return "test-key" }
func (c testConfig) Model() string    { return "claude-test" }
func (c testConfig) MaxTokens() int64 { return 256 }
func (c testConfig) BaseURL() string  { return c.url }

const okBody = `{
  "id": "msg_1",
  "type": "message",
  "role": "assistant",
  "model": "claude-test",
  "content": [{"type": "text", "text": "{\"response_type\":\"GENERAL_ADVICE\","}, {"type": "text", "text": "\"summary_text\":\"ok\"}"}],
  "stop_reason": "end_turn",
  "usage": {"input_tokens": 10, "output_tokens": 5}
}`

func Test_OnComplete_ShouldSendSystemPromptAndImage(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	text, err := New(testConfig{url: srv.URL}).Complete(context.Background(), assistant.Request{
		System: "be helpful",
		Prompt: "hello",
		Image:  &assistant.Image{MimeType: "image/jpeg", Data: []byte("abc")},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"response_type":"GENERAL_ADVICE","summary_text":"ok"}`, text)
	assert.Equal(t, "claude-test", body["model"])
	assert.Equal(t, float64(256), body["max_tokens"])

	system := body["system"].([]any)[0].(map[string]any)
	assert.Equal(t, "be helpful", system["text"])

	content := body["messages"].([]any)[0].(map[string]any)["content"].([]any)
	require.Len(t, content, 2)
	source := content[1].(map[string]any)["source"].(map[string]any)
	assert.Equal(t, "image/jpeg", source["media_type"])
	assert.Equal(t, "YWJj", source["data"])
}

func Test_OnServerError_ShouldFailWithoutRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
	}))
	defer srv.Close()

	_, err := New(testConfig{url: srv.URL}).Complete(context.Background(), assistant.Request{Prompt: "hi"})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
