package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"medical-store/internal/clock"
	"medical-store/internal/repository"
	"medical-store/internal/store"
	"medical-store/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFullRouter(t *testing.T, opts RouterOptions) (*gin.Engine, *store.InventoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	inventory := store.New(context.Background(), repository.NewInMemoryInventoryRepository(),
		store.WithClock(clock.Fixed(testNow)),
	)
	return NewRouter(zap.NewNop(), inventory, opts), inventory
}

func TestNewRouter_IdempotentCreate(t *testing.T) {
	responses := middleware.NewInMemoryResponseStore()
	defer responses.Close()
	router, inventory := newFullRouter(t, RouterOptions{Service: "medical-store", ResponseStore: responses})

	body := `{"name":"Zinc","category":"Wellness","batchNumber":"Z-1","supplier":"NatureLife Labs",` +
		`"quantity":30,"unit":"tablet","expiryDate":"2025-01-01"}`
	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/items", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.IdempotencyKeyHeader, "zinc-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send()
	second := send()

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Len(t, inventory.Items(), 4)
}

func TestNewRouter_RequestIDAndNotFound(t *testing.T) {
	router, _ := newFullRouter(t, RouterOptions{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nothing-here", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, w.Body.String(), "ResourceNotFound")
}

func TestNewRouter_ServesDashboard(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Medical Store</h1>"), 0o644))
	router, _ := newFullRouter(t, RouterOptions{DashboardDir: dir})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Medical Store")
}
