package tipster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/gurus", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "อาจารย์หนู", "accuracy": 62.5, "last_hit": "57"},
			{"name": "แม่น้ำหนึ่ง", "accuracy": 58.0}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	gurus, err := client.Roster(context.Background())
	require.NoError(t, err)
	require.Len(t, gurus, 2)
	assert.Equal(t, "อาจารย์หนู", gurus[0].Name)
	assert.InDelta(t, 62.5, gurus[0].Accuracy, 0.001)
	assert.Equal(t, "57", gurus[0].LastHit)
	assert.Empty(t, gurus[1].LastHit)
}

func TestRosterErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "not_found", status: http.StatusNotFound, body: `{"error":"no roster"}`, wantErr: "unexpected status 404"},
		{name: "malformed", status: http.StatusOK, body: `{not a list`, wantErr: "unmarshal response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL)
			gurus, err := client.Roster(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, gurus)
		})
	}
}

func TestRosterNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Roster(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send request")
}
