package httpapi

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikey/llm-phishing-detector/internal/metrics"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	t.Run("generates new request ID when not provided", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(requestIDKey))
		})

		req, _ := http.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(requestIDHeader))
	})

	t.Run("uses provided request ID", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(requestIDKey))
		})

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set(requestIDHeader, "custom-request-id-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "custom-request-id-123", w.Body.String())
		assert.Equal(t, "custom-request-id-123", w.Header().Get(requestIDHeader))
	})
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"success logs info", http.StatusOK, "info"},
		{"4xx logs warning", http.StatusBadRequest, "warn"},
		{"5xx logs error", http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observed, logs := observer.New(zap.DebugLevel)
			router := gin.New()
			router.Use(RequestID())
			router.Use(Logger(zap.New(observed)))
			router.GET("/test", func(c *gin.Context) {
				c.Status(tt.status)
			})

			req, _ := http.NewRequest("GET", "/test", nil)
			router.ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.wantLevel, entries[0].Level.String())
				assert.Equal(t, int64(tt.status), entries[0].ContextMap()["status"])
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	t.Run("recovers from panic", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.Use(Recovery(zap.NewNop()))
		router.GET("/test", func(c *gin.Context) {
			panic("test panic")
		})

		req, _ := http.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery(zap.NewNop()))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		req, _ := http.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMaxBytes(t *testing.T) {
	newRouter := func(limit int64) *gin.Engine {
		router := gin.New()
		router.POST("/test", MaxBytes(limit), func(c *gin.Context) {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				HandleError(c, err)
				return
			}
			c.String(http.StatusOK, string(body))
		})
		return router
	}

	t.Run("within limit", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/test", strings.NewReader("hello"))
		w := httptest.NewRecorder()
		newRouter(10).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello", w.Body.String())
	})

	t.Run("declared length over limit", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/test", strings.NewReader(strings.Repeat("a", 20)))
		w := httptest.NewRecorder()
		newRouter(10).ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("unknown length over limit", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/test", io.NopCloser(bytes.NewReader(make([]byte, 20))))
		req.ContentLength = -1
		w := httptest.NewRecorder()
		newRouter(10).ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/test", strings.NewReader(strings.Repeat("a", 20)))
		w := httptest.NewRecorder()
		newRouter(0).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
	req, _ := http.NewRequest("GET", "/missing", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	req, _ = http.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, `phishing_detector_http_requests_total{method="GET",path="/test",status="200"} 3`)
	assert.Contains(t, body, `phishing_detector_http_requests_total{method="GET",path="unmatched",status="404"} 1`)
}
