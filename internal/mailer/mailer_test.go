package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "deck@example.com", payload["from"])
		assert.Equal(t, []any{"founder@example.com"}, payload["to"])
		assert.Equal(t, "Weekly digest", payload["subject"])
		assert.Equal(t, "<p>hello</p>", payload["html"])

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email-id"}`))
	}))
	defer server.Close()

	client := NewResendClientWithURL(server.URL)

	err := client.Send(context.Background(), "re_test_key", Message{
		From:    "deck@example.com",
		To:      "founder@example.com",
		Subject: "Weekly digest",
		HTML:    "<p>hello</p>",
	})
	assert.NoError(t, err)
}

func TestSendMissingAPIKey(t *testing.T) {
	client := NewResendClient()

	err := client.Send(context.Background(), "", Message{To: "founder@example.com"})
	assert.Error(t, err)
}

func TestSendProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewResendClientWithURL(server.URL)

	err := client.Send(context.Background(), "re_test_key", Message{
		From:    "deck@example.com",
		To:      "founder@example.com",
		Subject: "Weekly digest",
		Text:    "hello",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}
