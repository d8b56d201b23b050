package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeRecorder struct {
	requests []recordedRequest
}

func (f *fakeRecorder) RecordRequest(method, route string, statusCode int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method: method, route: route, status: statusCode})
}

func newTestEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/items/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(contextKeyRequestID)})
	})
	return r
}

func serve(r *gin.Engine, path string, header http.Header) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_Generated(t *testing.T) {
	r := newTestEngine(RequestID())

	w := serve(r, "/items/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(headerRequestID))
	assert.Contains(t, w.Body.String(), w.Header().Get(headerRequestID))
}

func TestRequestID_Propagated(t *testing.T) {
	r := newTestEngine(RequestID())

	w := serve(r, "/items/1", http.Header{headerRequestID: {"abc-123"}})
	assert.Equal(t, "abc-123", w.Header().Get(headerRequestID))
	assert.JSONEq(t, `{"request_id":"abc-123"}`, w.Body.String())
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	rec := &fakeRecorder{}
	r := newTestEngine(Metrics(rec))

	serve(r, "/items/42", nil)
	serve(r, "/nowhere", nil)

	require.Len(t, rec.requests, 2)
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "/items/:id", status: http.StatusOK}, rec.requests[0])
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound}, rec.requests[1])
}

func TestLogging_PassesThrough(t *testing.T) {
	r := newTestEngine(RequestID(), Logging())

	w := serve(r, "/items/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2, time.Minute)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// other clients have their own bucket
	assert.True(t, rl.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	now = now.Add(2 * time.Minute)
	rl.Allow("10.0.0.2")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.clients, "10.0.0.1")
	assert.Contains(t, rl.clients, "10.0.0.2")
}

func TestRateLimiter_SweepsOncePerTTL(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	rl := NewRateLimiter(1, 1, time.Minute)
	rl.now = func() time.Time { return now }

	at := func(offset time.Duration, key string) {
		now = start.Add(offset)
		rl.Allow(key)
	}

	at(0, "10.0.0.1")
	at(40*time.Second, "10.0.0.2")
	at(60*time.Second, "10.0.0.3")
	// 10.0.0.1 and 10.0.0.2 are idle past the ttl, but the last sweep ran
	// less than a ttl ago
	at(110*time.Second, "10.0.0.4")

	rl.mu.Lock()
	assert.Equal(t, start.Add(60*time.Second), rl.lastSweep)
	assert.Len(t, rl.clients, 4)
	rl.mu.Unlock()

	at(125*time.Second, "10.0.0.5")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Equal(t, start.Add(125*time.Second), rl.lastSweep)
	assert.NotContains(t, rl.clients, "10.0.0.1")
	assert.NotContains(t, rl.clients, "10.0.0.2")
	assert.NotContains(t, rl.clients, "10.0.0.3")
	assert.Contains(t, rl.clients, "10.0.0.4")
	assert.Contains(t, rl.clients, "10.0.0.5")
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, time.Minute)
	r := newTestEngine(rl.Middleware())

	assert.Equal(t, http.StatusOK, serve(r, "/items/1", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, "/items/1", nil).Code)
}
