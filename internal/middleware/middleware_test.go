package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-shiftplan/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestContextLogger_PropagatesMetadata(t *testing.T) {
	r := setupRouter()
	r.Use(ContextLogger(zap.NewNop()))

	var gotRID, gotSede string
	r.GET("/schedules", func(c *gin.Context) {
		gotRID = contextutil.GetRequestID(c.Request.Context())
		gotSede = contextutil.GetSede(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedules?location=Amag%C3%A1", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", gotRID)
	assert.Equal(t, "Amagá", gotSede)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestContextLogger_GeneratesRequestID(t *testing.T) {
	r := setupRouter()
	r.Use(ContextLogger(nil))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRateLimitByIP(t *testing.T) {
	r := setupRouter()
	r.GET("/sedes", RateLimitByIP(0.001, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sedes", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestIdempotency(t *testing.T) {
	const path = "/api/v1/employees"
	cacheKey := IdempotencyKey(path, "abc")
	lockKey := cacheKey + ":lock"

	newRouter := func(t *testing.T, calls *int) (*gin.Engine, redismock.ClientMock) {
		rdb, mock := redismock.NewClientMock()
		r := setupRouter()
		r.POST(path, Idempotency(rdb), func(c *gin.Context) {
			*calls++
			c.JSON(http.StatusCreated, gin.H{"id": "emp-1"})
		})
		return r, mock
	}

	do := func(r *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(IdempotencyHeader, "abc")
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("first request stores response", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(t, &calls)

		payload, _ := json.Marshal(cachedResponse{Status: http.StatusCreated, Body: json.RawMessage(`{"id":"emp-1"}`)})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := do(r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay skips handler", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(t, &calls)

		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"id":"emp-1"}}`)

		w := do(r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":"emp-1"}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 0, calls)
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		calls := 0
		r, mock := newRouter(t, &calls)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", idempotencyLockTTL).SetVal(false)

		w := do(r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})
}

func TestRequestID_ReplacesOversizedHeader(t *testing.T) {
	r := setupRouter()
	var seen string
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		seen = contextutil.GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}
