package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDAssigned(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	id := w.Header().Get(RequestIDHeader)
	if len(id) != 36 || w.Body.String() != id {
		t.Fatalf("expected generated uuid, header=%q body=%q", id, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	if got := serve(r, req).Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected caller id to be kept, got %q", got)
	}
}

func TestErrorHandlerRendersUserMessage(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) {
		c.Error(fmt.Errorf("%w: socket closed on mongo-0", errors.ErrQueryFailed))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "Failed to fetch listings" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) {
		c.Error(errors.ErrInvalidParameters)
		c.String(http.StatusTeapot, "handled")
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTeapot || w.Body.String() != "handled" {
		t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(NewRateLimiter(rate.Every(time.Hour), 2)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		if w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil)); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.9:5555"
	if w := serve(r, other); w.Code != http.StatusOK {
		t.Fatalf("other clients have their own bucket, got %d", w.Code)
	}
}

func TestRateLimiterEvictIdle(t *testing.T) {
	rl := NewRateLimiter(PerMinute(60), 1)
	rl.getLimiter("1.1.1.1")
	rl.evictIdle(time.Now().Add(2 * time.Hour))
	if len(rl.visitors) != 0 {
		t.Fatalf("expected idle visitor to be evicted, have %d", len(rl.visitors))
	}
}

func TestSecureHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecureHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Content-Type-Options") != "nosniff" || w.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatalf("missing secure headers: %v", w.Header())
	}
}
