package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFailBodyIsStable(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/fail", func(c *gin.Context) {
		Fail(c, http.StatusUnauthorized, ErrInvalidCredentials)
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/fail", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusUnauthorized, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.JSONEq(t, `{"data":null,"error":{"code":"INVALID_CREDENTIALS","message":"Invalid credentials"}}`, first.Body.String())
	assert.NotEqual(t, first.Header().Get("X-Request-ID"), second.Header().Get("X-Request-ID"))
}

func TestRequestIDReusesHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = RequestID(c)
		Success(c, http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"data":{"ok":true}}`, w.Body.String())
}

func TestRequestIDRejectsUnsafeHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { Success(c, http.StatusOK, nil) })

	for _, bad := range []string{"has space", "line\tbreak", strings.Repeat("a", 65)} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, bad)
		r.ServeHTTP(w, req)

		got := w.Header().Get(HeaderRequestID)
		assert.NotEqual(t, bad, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err, "replacement should be a uuid")
	}
}

func TestFailWithFields(t *testing.T) {
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		FailWithFields(c, http.StatusBadRequest, ErrValidation, map[string]string{"name": "name is required"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"fields":{"name":"name is required"}`)
}

func TestGetMessageUnknownCode(t *testing.T) {
	assert.Equal(t, "Internal server error", GetMessage(ErrInternal))
	assert.Equal(t, "An unexpected error occurred", GetMessage(ErrCode("NOPE")))
}
