package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Equal(t, "advise on wheat", req.Contents[0].Parts[0].Text)

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hold "},{"text":"for now."}]}}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	text, err := client.GenerateContent(context.Background(), "gemini-2.0-flash", "advise on wheat")

	require.NoError(t, err)
	require.Equal(t, "Hold for now.", text)
}

func TestGenerateContentRequiresAPIKey(t *testing.T) {
	client := NewClient("", "")

	_, err := client.GenerateContent(context.Background(), "gemini-2.0-flash", "hi")

	require.Error(t, err)
	require.Contains(t, err.Error(), "api key")
}

func TestGenerateContentNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	_, err := client.GenerateContent(context.Background(), "gemini-2.0-flash", "hi")

	require.Error(t, err)
	require.Contains(t, err.Error(), "no candidates")
}

func TestGenerateContentEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	_, err := client.GenerateContent(context.Background(), "gemini-2.0-flash", "hi")

	require.Error(t, err)
	require.Contains(t, err.Error(), "empty content")
}

func TestGenerateContentUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"quota"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	_, err := client.GenerateContent(context.Background(), "gemini-2.0-flash", "hi")

	require.Error(t, err)
	require.Contains(t, err.Error(), "status=429")
}
