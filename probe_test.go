package jukeaudio

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsJukeCompatible(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v2.3", true},
		{"v2.0", true},
		{"v2.", true},
		{"v2.10.1", true},
		{"v2", false},
		{"v1.9", false},
		{"v20.1", false},
		{"V2.3", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, IsJukeCompatible(tt.version))
		})
	}
}

func versionsHandler(t *testing.T, status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "probe must not send credentials")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func TestCanConnect(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   bool
	}{
		{name: "compatible version", status: http.StatusOK, body: `{"versions":["v2.1"]}`, want: true},
		{name: "only first version counts", status: http.StatusOK, body: `{"versions":["v1.0","v2.1"]}`, want: false},
		{name: "old version", status: http.StatusOK, body: `{"versions":["v1.0"]}`, want: false},
		{name: "no versions", status: http.StatusOK, body: `{"versions":[]}`, want: false},
		{name: "missing versions field", status: http.StatusOK, body: `{}`, want: false},
		{name: "not json", status: http.StatusOK, body: `<html>router login</html>`, want: false},
		{name: "status is not inspected", status: http.StatusUnauthorized, body: `{"versions":["v2.4"]}`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(t, versionsHandler(t, tt.status, tt.body))

			assert.Equal(t, tt.want, client.CanConnect(context.Background()))
			assert.Equal(t, tt.want, CanConnect(context.Background(), hostOf(server)))
		})
	}

	t.Run("connection refused returns false", func(t *testing.T) {
		assert.False(t, CanConnect(context.Background(), closedHost(t)))
	})

	t.Run("dropped connection returns false", func(t *testing.T) {
		client, _ := newTestClient(t, dropConnection(t))
		assert.False(t, client.CanConnect(context.Background()))
	})

	t.Run("empty host returns false", func(t *testing.T) {
		assert.False(t, CanConnect(context.Background(), ""))
	})

	t.Run("cancelled context returns false", func(t *testing.T) {
		client, _ := newTestClient(t, versionsHandler(t, http.StatusOK, `{"versions":["v2.1"]}`))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.False(t, client.CanConnect(ctx))
	})
}

func TestClient_APIVersions(t *testing.T) {
	t.Run("returns all versions", func(t *testing.T) {
		client, _ := newTestClient(t, versionsHandler(t, http.StatusOK, `{"versions":["v2.1","v1.0"]}`))

		versions, err := client.APIVersions(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"v2.1", "v1.0"}, versions)
	})

	t.Run("non-200 is an authentication error", func(t *testing.T) {
		client, _ := newTestClient(t, versionsHandler(t, http.StatusServiceUnavailable, `{"versions":["v2.1"]}`))

		_, err := client.APIVersions(context.Background())
		require.Error(t, err)
		assert.True(t, IsAuthentication(err))
	})

	t.Run("decode failure is an unexpected error", func(t *testing.T) {
		client, _ := newTestClient(t, versionsHandler(t, http.StatusOK, `nope`))

		_, err := client.APIVersions(context.Background())
		require.Error(t, err)
		assert.True(t, IsUnexpected(err))
	})
}
