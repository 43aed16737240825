package paste

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "hello world", string(body))

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, "https://paste.example/abc\n")
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)

	body, err := client.Publish([]byte("hello world"))

	require.NoError(t, err)
	assert.Equal(t, "https://paste.example/abc\n", body)
}

func TestPublish_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)

	_, err := client.Publish([]byte("hello"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestPublish_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewHTTPClient(server.URL)

	_, err := client.Publish([]byte("hello"))

	assert.Error(t, err)
}
