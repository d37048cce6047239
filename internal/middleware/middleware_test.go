package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/config"
	"github.com/govjobs/govjobs-backend/internal/response"
	"github.com/govjobs/govjobs-backend/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBrotliCompressesLargeBodies(t *testing.T) {
	large := strings.Repeat("government jobs ", 200)
	r := gin.New()
	r.Use(Brotli())
	r.GET("/large", func(c *gin.Context) { c.String(http.StatusOK, large) })
	r.GET("/small", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/large", nil)
	req.Header.Set("Accept-Encoding", "gzip, br;q=1.0")
	w := serve(r, req)
	require.Equal(t, "br", w.Header().Get("Content-Encoding"))
	plain, err := io.ReadAll(brotli.NewReader(bytes.NewReader(w.Body.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, large, string(plain))

	req = httptest.NewRequest(http.MethodGet, "/small", nil)
	req.Header.Set("Accept-Encoding", "br")
	w = serve(r, req)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "ok", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/large", nil)
	w = serve(r, req)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, large, w.Body.String())
}

func TestBrotliManySmallWrites(t *testing.T) {
	r := gin.New()
	r.Use(BrotliWithConfig(BrotliConfig{MinLength: 16}))
	r.GET("/chunks", func(c *gin.Context) {
		c.Status(http.StatusOK)
		for i := 0; i < 10; i++ {
			_, _ = c.Writer.WriteString("chunk-")
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/chunks", nil)
	req.Header.Set("Accept-Encoding", "br")
	w := serve(r, req)
	require.Equal(t, "br", w.Header().Get("Content-Encoding"))
	plain, err := io.ReadAll(brotli.NewReader(bytes.NewReader(w.Body.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("chunk-", 10), string(plain))
}

func TestBrotliSkipsSpreadsheets(t *testing.T) {
	payload := bytes.Repeat([]byte{'P', 'K', 3, 4}, 512)
	r := gin.New()
	r.Use(Brotli())
	r.GET("/export", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", payload)
	})

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	req.Header.Set("Accept-Encoding", "br")
	w := serve(r, req)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, w.Body.Bytes())
}

func TestBrotliRefusedByQZero(t *testing.T) {
	r := gin.New()
	r.Use(Brotli())
	r.GET("/large", func(c *gin.Context) { c.String(http.StatusOK, strings.Repeat("x", 4096)) })

	req := httptest.NewRequest(http.MethodGet, "/large", nil)
	req.Header.Set("Accept-Encoding", "gzip, br;q=0")
	w := serve(r, req)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Len(t, w.Body.String(), 4096)
}

func TestRateLimiterRefill(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("2.2.2.2"))

	now = now.Add(30 * time.Second)
	assert.False(t, rl.Allow("1.1.1.1"))

	now = now.Add(31 * time.Second)
	assert.True(t, rl.Allow("1.1.1.1"))
}

func TestRateLimiterCleanup(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute)
	rl.now = func() time.Time { return now }

	rl.Allow("1.1.1.1")
	now = now.Add(4 * time.Minute)
	rl.cleanup()
	assert.Empty(t, rl.visitors)
}

func TestRequireAdminJWT(t *testing.T) {
	auth := service.NewAuthService(&config.Config{JWTSecret: "mw-secret", JWTExpiry: time.Hour, BcryptCost: 4})
	token, err := auth.IssueAdminToken("admin-id", "admin")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/secure", RequireAdminJWT(auth), func(c *gin.Context) {
		response.Success(c, http.StatusOK, GetClaims(c).Username)
	})

	tests := []struct {
		header string
		status int
		body   string
	}{
		{"", http.StatusUnauthorized, "TOKEN_REQUIRED"},
		{"Bearer", http.StatusUnauthorized, "TOKEN_REQUIRED"},
		{"Bearer abc.def.ghi", http.StatusUnauthorized, "TOKEN_INVALID"},
		{"bearer " + token, http.StatusOK, `"admin"`},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		w := serve(r, req)
		assert.Equal(t, tt.status, w.Code, tt.header)
		assert.Contains(t, w.Body.String(), tt.body, tt.header)
	}
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	r := gin.New()
	r.Use(response.RequestIDMiddleware(), Recovery(zerolog.New(&logs)))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := serve(r, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"data":null,"error":{"code":"INTERNAL_ERROR","message":"Internal server error"}}`, w.Body.String())
	assert.Contains(t, logs.String(), "kaboom")
	assert.Contains(t, logs.String(), "req-123")
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&logs)))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	out := logs.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"path":"/missing"`)
}

func TestCacheHeaders(t *testing.T) {
	r := gin.New()
	r.GET("/public", CacheControl(60), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/off", CacheControl(0), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/private", NoStore(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, "public, max-age=60", serve(r, httptest.NewRequest(http.MethodGet, "/public", nil)).Header().Get("Cache-Control"))
	assert.Empty(t, serve(r, httptest.NewRequest(http.MethodGet, "/off", nil)).Header().Get("Cache-Control"))
	assert.Equal(t, "no-store", serve(r, httptest.NewRequest(http.MethodGet, "/private", nil)).Header().Get("Cache-Control"))
}
