package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"medical-store/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader is the HTTP header name for request ID
	RequestIDHeader = "X-Request-ID"
	// IdempotencyKeyHeader lets a client retry a write without applying it twice
	IdempotencyKeyHeader = "Idempotency-Key"
	// RequestIDContextKey is the context key for request ID
	RequestIDContextKey = "request_id"
)

type requestIDKey struct{}

// RequestIDMiddleware extracts or generates X-Request-ID header
func RequestIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			logger.Debug("Generated new request ID",
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
			)
		}

		c.Set(RequestIDContextKey, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDKey{}, requestID))
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the Gin context
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDContextKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// RequestIDFromContext retrieves the request ID from a request context
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// CachedResponse is a replayable write response.
type CachedResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// ResponseStore keeps write responses by idempotency key. Reserve claims a
// key for a request in flight; it fails while the key is reserved or holds a
// response. Release drops a reservation whose request did not succeed.
type ResponseStore interface {
	Store(ctx context.Context, key string, response CachedResponse, ttl time.Duration) error
	Get(ctx context.Context, key string) (CachedResponse, bool, error)
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// InMemoryResponseStore is an in-memory implementation of ResponseStore
type InMemoryResponseStore struct {
	mu      sync.Mutex
	entries map[string]responseEntry
	now     func() time.Time
	cleanup *time.Ticker
	done    chan struct{}
}

type responseEntry struct {
	response  CachedResponse
	pending   bool
	expiresAt time.Time
}

// NewInMemoryResponseStore creates a store that sweeps expired entries every minute
func NewInMemoryResponseStore() *InMemoryResponseStore {
	store := &InMemoryResponseStore{
		entries: make(map[string]responseEntry),
		now:     time.Now,
		cleanup: time.NewTicker(time.Minute),
		done:    make(chan struct{}),
	}
	go store.cleanupExpired()
	return store
}

func (s *InMemoryResponseStore) Store(ctx context.Context, key string, response CachedResponse, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = responseEntry{response: response, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *InMemoryResponseStore) Get(ctx context.Context, key string) (CachedResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[key]
	if !exists || entry.pending {
		return CachedResponse{}, false, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		return CachedResponse{}, false, nil
	}
	return entry.response, true, nil
}

func (s *InMemoryResponseStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if entry, exists := s.entries[key]; exists && !now.After(entry.expiresAt) {
		return false, nil
	}
	s.entries[key] = responseEntry{pending: true, expiresAt: now.Add(ttl)}
	return true, nil
}

func (s *InMemoryResponseStore) Release(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, exists := s.entries[key]; exists && entry.pending {
		delete(s.entries, key)
	}
	return nil
}

// Close stops the cleanup goroutine
func (s *InMemoryResponseStore) Close() {
	s.cleanup.Stop()
	close(s.done)
}

func (s *InMemoryResponseStore) cleanupExpired() {
	for {
		select {
		case <-s.done:
			return
		case <-s.cleanup.C:
			s.mu.Lock()
			now := s.now()
			for key, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, key)
				}
			}
			s.mu.Unlock()
		}
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}

// IdempotencyMiddleware replays the stored response for a repeated
// Idempotency-Key on write requests and records successful new ones.
func IdempotencyMiddleware(store ResponseStore, logger *zap.Logger, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || !isWrite(c.Request.Method) {
			c.Next()
			return
		}
		cacheKey := c.Request.Method + " " + c.Request.URL.Path + " " + key

		ctx := c.Request.Context()
		if replay(c, store, logger, key, cacheKey) {
			return
		}

		reserved, err := store.Reserve(ctx, cacheKey, ttl)
		if err != nil {
			// fail open
			logger.Warn("Error reserving idempotency key", zap.String("key", key), zap.Error(err))
			reserved = true
		}
		if !reserved {
			// the first request finished in between, or is still running
			if replay(c, store, logger, key, cacheKey) {
				return
			}
			logger.Info("Duplicate request while the original is in flight",
				zap.String("key", key),
				zap.String("path", c.Request.URL.Path),
			)
			appErr := errors.NewRequestInProgress(key)
			c.AbortWithStatusJSON(appErr.HTTPStatus(), appErr)
			return
		}

		writer := &responseWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if len(c.Errors) > 0 || !writer.Written() || status < 200 || status >= 300 {
			if err := store.Release(ctx, cacheKey); err != nil {
				logger.Warn("Failed to release idempotency key", zap.String("key", key), zap.Error(err))
			}
			return
		}
		response := CachedResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body,
		}
		if err := store.Store(ctx, cacheKey, response, ttl); err != nil {
			logger.Warn("Failed to store response for idempotency", zap.String("key", key), zap.Error(err))
		}
	}
}

// responseWriter captures the response body
type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body = append(w.body, s...)
	return w.ResponseWriter.WriteString(s)
}

// replay writes the stored response for cacheKey, if there is one.
func replay(c *gin.Context, store ResponseStore, logger *zap.Logger, key, cacheKey string) bool {
	cached, found, err := store.Get(c.Request.Context(), cacheKey)
	if err != nil {
		// fail open
		logger.Warn("Error reading idempotency store", zap.String("key", key), zap.Error(err))
		return false
	}
	if !found {
		return false
	}
	logger.Info("Duplicate request detected, returning cached response",
		zap.String("key", key),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.Data(cached.Status, cached.ContentType, cached.Body)
	c.Abort()
	return true
}
