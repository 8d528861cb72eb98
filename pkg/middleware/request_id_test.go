package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware_GenerateID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware(zap.NewNop()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"request_id": GetRequestID(c),
			"from_ctx":   RequestIDFromContext(c.Request.Context()),
		})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	responseID := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(responseID)
	assert.NoError(t, err)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`"from_ctx":"%s"`, responseID))
}

func TestRequestIDMiddleware_UseProvidedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware(zap.NewNop()))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})

	providedID := uuid.New().String()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(RequestIDHeader, providedID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, providedID, w.Header().Get(RequestIDHeader))
}

func setupIdempotentRouter(store ResponseStore, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(IdempotencyMiddleware(store, zap.NewNop(), 5*time.Minute))
	router.POST("/items", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusCreated, gin.H{"call": *calls})
	})
	router.POST("/broken", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusBadRequest, gin.H{"call": *calls})
	})
	router.GET("/items", func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusOK, gin.H{"call": *calls})
	})
	return router
}

func TestIdempotencyMiddleware_ReplaysDuplicateWrite(t *testing.T) {
	store := NewInMemoryResponseStore()
	defer store.Close()
	calls := 0
	router := setupIdempotentRouter(store, &calls)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/items", nil)
		req.Header.Set(IdempotencyKeyHeader, "create-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send()
	second := send()

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
}

func TestIdempotencyMiddleware_SkipsWithoutKeyOrOnRead(t *testing.T) {
	store := NewInMemoryResponseStore()
	defer store.Close()
	calls := 0
	router := setupIdempotentRouter(store, &calls)

	for i := 0; i < 2; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/items", nil))

		req := httptest.NewRequest("GET", "/items", nil)
		req.Header.Set(IdempotencyKeyHeader, "read")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 4, calls)
}

func TestIdempotencyMiddleware_DoesNotCacheFailures(t *testing.T) {
	store := NewInMemoryResponseStore()
	defer store.Close()
	calls := 0
	router := setupIdempotentRouter(store, &calls)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/broken", nil)
		req.Header.Set(IdempotencyKeyHeader, "retry-me")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2, calls)
}

func TestInMemoryResponseStore_Expiration(t *testing.T) {
	store := NewInMemoryResponseStore()
	defer store.Close()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Store(context.Background(), "k", CachedResponse{Status: 201, Body: []byte("{}")}, time.Minute))

	cached, found, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 201, cached.Status)

	now = now.Add(2 * time.Minute)
	_, found, err = store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestIdempotencyMiddleware_ConcurrentDuplicateIsRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := NewInMemoryResponseStore()
	defer store.Close()

	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	router := gin.New()
	router.Use(IdempotencyMiddleware(store, zap.NewNop(), 5*time.Minute))
	router.POST("/items", func(c *gin.Context) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
		}
		c.JSON(http.StatusCreated, gin.H{"id": "item-1"})
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/items", nil)
		req.Header.Set(IdempotencyKeyHeader, "create-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	firstDone := make(chan *httptest.ResponseRecorder, 1)
	go func() { firstDone <- send() }()
	<-started

	inFlight := send()
	assert.Equal(t, http.StatusConflict, inFlight.Code)
	assert.Contains(t, inFlight.Body.String(), "RequestInProgress")

	close(release)
	first := <-firstDone
	assert.Equal(t, http.StatusCreated, first.Code)

	replayed := send()
	assert.Equal(t, http.StatusCreated, replayed.Code)
	assert.Equal(t, first.Body.String(), replayed.Body.String())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInMemoryResponseStore_ReserveAndRelease(t *testing.T) {
	store := NewInMemoryResponseStore()
	defer store.Close()
	ctx := context.Background()

	ok, err := store.Reserve(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Reserve(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found, "a reservation is not a response")

	require.NoError(t, store.Release(ctx, "k"))
	ok, err = store.Reserve(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Store(ctx, "k", CachedResponse{Status: 201}, time.Minute))
	require.NoError(t, store.Release(ctx, "k"))
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found, "release keeps completed responses")
}
