// internal/upstream/client_test.go
package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepchain/internal/common/errors"
	internalhttp "stepchain/internal/common/http"
	"stepchain/internal/common/logger"
	"stepchain/internal/models"
)

// newEchoServer emulates the httpbin /post contract: it returns an envelope
// with the posted JSON re-parsed under "json".
func newEchoServer(t *testing.T, calls *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++

		var p models.Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))

		envelope := models.EchoEnvelope{
			Args:    map[string]string{},
			Files:   map[string]string{},
			Form:    map[string]string{},
			Headers: map[string]string{"Content-Type": r.Header.Get("Content-Type")},
			JSON:    p,
			Origin:  "127.0.0.1",
			URL:     r.URL.String(),
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(envelope))
	}))
}

func newTestClient(t *testing.T, cfg *Config) *Client {
	t.Helper()
	return NewClient(cfg, internalhttp.NewClient(5*time.Second), logger.NewTestLogger(t))
}

func TestClient_PostAndEcho_ReturnsNestedPayload(t *testing.T) {
	calls := 0
	ts := newEchoServer(t, &calls)
	defer ts.Close()

	client := newTestClient(t, &Config{URL: ts.URL, Timeout: 5 * time.Second})

	in := models.Payload{ID: "abc", Name: "x"}
	out, err := client.PostAndEcho(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Equal(t, 1, calls)
}

func TestClient_PostAndEcho_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := newTestClient(t, &Config{URL: ts.URL, Timeout: 5 * time.Second})

	_, err := client.PostAndEcho(context.Background(), models.Payload{ID: "abc", Name: "x"})

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUpstreamBadStatus, stdErr.Code)
}

func TestClient_PostAndEcho_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // closed server, connection refused

	client := newTestClient(t, &Config{URL: ts.URL, Timeout: 5 * time.Second})

	_, err := client.PostAndEcho(context.Background(), models.Payload{ID: "abc", Name: "x"})

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUpstreamUnreachable, stdErr.Code)
}

func TestClient_PostAndEcho_MalformedBodyIsTerminal(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"json": not-json`))
	}))
	defer ts.Close()

	client := newTestClient(t, &Config{URL: ts.URL, Timeout: 5 * time.Second})

	_, err := client.PostAndEcho(context.Background(), models.Payload{ID: "abc", Name: "x"})

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUpstreamDecodeFailed, stdErr.Code)
	assert.Equal(t, 1, calls, "terminal by default: no re-issue")
}

func TestClient_PostAndEcho_RetryMalformedReissuesOnce(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"json": not-json`))
	}))
	defer ts.Close()

	client := newTestClient(t, &Config{URL: ts.URL, Timeout: 5 * time.Second, RetryMalformed: true})

	_, err := client.PostAndEcho(context.Background(), models.Payload{ID: "abc", Name: "x"})

	require.Error(t, err)
	assert.Equal(t, 2, calls, "exactly one re-issue when enabled")
}

func TestClient_PostAndEcho_RetryMalformedRecovers(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if calls == 1 {
			w.Write([]byte(`{"json": not-json`))
			return
		}
		var p models.Payload
		json.NewDecoder(r.Body).Decode(&p)
		json.NewEncoder(w).Encode(models.EchoEnvelope{JSON: p})
	}))
	defer ts.Close()

	client := newTestClient(t, &Config{URL: ts.URL, Timeout: 5 * time.Second, RetryMalformed: true})

	out, err := client.PostAndEcho(context.Background(), models.Payload{ID: "abc", Name: "x"})

	require.NoError(t, err)
	assert.Equal(t, "abc", out.ID)
	assert.Equal(t, 2, calls)
}

func TestClient_PostAndEcho_ContextCancellation(t *testing.T) {
	ts := newEchoServer(t, new(int))
	defer ts.Close()

	client := newTestClient(t, &Config{URL: ts.URL, Timeout: 5 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.PostAndEcho(ctx, models.Payload{ID: "abc", Name: "x"})
	require.Error(t, err)
}
