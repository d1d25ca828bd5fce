package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"content": content}}},
	})
	return string(body)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model", Timeout: time.Second})
}

func TestExtract(t *testing.T) {
	var auth string
	var got chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(reply("```json\n{\"name\":\"Ali\",\"idNumber\":\"2345678901\",\"expiryDate\":\"2025-01-01\"}\n```")))
	})

	extraction, err := client.Extract(context.Background(), []byte{0xff, 0xd8}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, "Ali", extraction.Name)
	assert.Equal(t, "2345678901", extraction.IDNumber)
	assert.Equal(t, "2025-01-01", extraction.ExpiryDate)
}

func TestExtract_UnparseableReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(reply("I cannot read this document.")))
	})

	_, err := client.Extract(context.Background(), []byte{1}, "image/jpeg")
	assert.Error(t, err)
}

func TestAdvise(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(reply("  Offer cross-training.  ")))
	})

	text, err := client.Advise(context.Background(), "How do I retain cashiers?")
	require.NoError(t, err)
	assert.Equal(t, "Offer cross-training.", text)
}

func TestAdvise_Errors(t *testing.T) {
	t.Run("non 200", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		})
		_, err := client.Advise(context.Background(), "hi")
		assert.ErrorContains(t, err, "429")
	})

	t.Run("no choices", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		})
		_, err := client.Advise(context.Background(), "hi")
		assert.ErrorIs(t, err, ErrEmptyReply)
	})

	t.Run("timeout", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		})
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := client.Advise(ctx, "hi")
		assert.Error(t, err)
	})
}
