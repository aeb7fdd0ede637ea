package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/tiny-go/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLog(t *testing.T) {
	t.Run("logs completed request with request id", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)

		router, api := setupTestAPI(t)
		api.UseMiddleware(middleware.AccessLog(zap.New(core)))

		huma.Get(api, "/test", func(_ context.Context, _ *struct{}) (*testOutput, error) {
			return &testOutput{Body: "ok"}, nil
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-7")

		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())

		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "req-7", fields["request_id"])
		assert.Equal(t, http.MethodGet, fields["method"])
		assert.Equal(t, "/test", fields["path"])
		assert.EqualValues(t, http.StatusOK, fields["status"])
	})
}
