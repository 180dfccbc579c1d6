package tracking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTrackFetchesAndCaches(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/track/jnt/JT123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"tracking_number": "JT123",
			"carrier": "jnt",
			"status": "IN_TRANSIT",
			"checkpoints": [{"location": "Manila Hub", "description": "Departed facility"}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Minute, zap.NewNop())

	resp, err := client.Track(context.Background(), "jnt", "JT123")
	require.NoError(t, err)
	assert.Equal(t, "IN_TRANSIT", resp.Status)
	require.Len(t, resp.Checkpoints, 1)
	assert.Equal(t, "Manila Hub", resp.Checkpoints[0].Location)

	// Second call inside the TTL is served from cache.
	resp2, err := client.Track(context.Background(), "jnt", "JT123")
	require.NoError(t, err)
	assert.Equal(t, resp, resp2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestTrackNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "tracking number not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Minute, zap.NewNop())

	_, err := client.Track(context.Background(), "lbc", "MISSING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
