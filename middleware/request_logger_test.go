package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func requestLoggerRouter(seen **zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) {
		if l, exists := c.Get("logger"); exists {
			*seen, _ = l.(*zap.Logger)
		}
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestLoggerSetsContextLogger(t *testing.T) {
	var seen *zap.Logger
	router := requestLoggerRouter(&seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	require.NotNil(t, seen)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestLoggerEchoesCallerRequestID(t *testing.T) {
	var seen *zap.Logger
	router := requestLoggerRouter(&seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}
