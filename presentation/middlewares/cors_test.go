package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/catspotter/cat-tracker/infrastructure/config"
	"github.com/catspotter/cat-tracker/presentation/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCorsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Cors: config.CorsConfig{AllowOrigins: "http://localhost:3000"},
	}

	router := gin.New()
	router.Use(middlewares.CorsMiddleware(cfg))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCorsHeaders(t *testing.T) {
	router := setupCorsRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	// only the methods this API actually exposes
	assert.Equal(t, "POST, OPTIONS, GET, HEAD", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestCorsPreflight(t *testing.T) {
	router := setupCorsRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
