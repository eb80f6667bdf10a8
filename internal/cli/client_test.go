package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGetDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var result HealthResult
	err := client.Get("/health", &result)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Status)
}

func TestClientPostSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"User added successfully.","user":{"nickname":"Ben","highscore":0}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var result UserResult
	err := client.Post("/addUser", map[string]any{"nickname": "Ben"}, &result)
	require.NoError(t, err)
	assert.Equal(t, "User added successfully.", result.Message)
	assert.Equal(t, "Ben", result.User.Nickname)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":"BLOCKED","message":"This phone number is blocked."}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.Get("/leaderboard?phone=511206591", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BLOCKED")
	assert.Contains(t, err.Error(), "This phone number is blocked.")
}

func TestClientSurfacesNonJSONErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.Get("/leaderboard", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:5000/")
	assert.Equal(t, "http://localhost:5000", client.baseURL)
}
