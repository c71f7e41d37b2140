package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"api-playground/internal/api/v1/auth"
	"api-playground/internal/api/v1/routes"
	"api-playground/internal/config"
)

func newTestServer(t *testing.T, cfg config.ServerConfig) *Server {
	t.Helper()
	return NewServer(cfg, routes.NewHandlers(auth.DefaultUsers()), prometheus.NewRegistry(), zap.NewNop())
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t, config.DefaultServerConfig())

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	var health map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/model/vgg", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"request_id"`)

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `playground_http_requests_total{method="GET",route="/",status="200"} 1`)
}

func TestServer_MetricsCountRecoveredPanics(t *testing.T) {
	s := newTestServer(t, config.DefaultServerConfig())
	s.Router().GET("/boom", func(c *gin.Context) {
		panic(errors.New("boom"))
	})

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"internal"`)

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `playground_http_requests_total{method="GET",route="/boom",status="500"} 1`)
}

func TestServer_StartShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	cfg := config.DefaultServerConfig()
	cfg.Port = strconv.Itoa(port)
	s := newTestServer(t, cfg)
	s.Start()

	url := "http://" + cfg.Address() + "/hello/server"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-s.Errors():
		t.Fatalf("unexpected listener error: %v", err)
	default:
	}
}
