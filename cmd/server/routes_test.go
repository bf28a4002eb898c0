package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"paylink.backend/internal/interfaces/http/handlers"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRegisterHealthRoute(t *testing.T) {
	r := newTestEngine()
	registerHealthRoute(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestApplyCORSMiddleware_Preflight(t *testing.T) {
	r := newTestEngine()
	applyCORSMiddleware(r)
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/x", nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegisterAPIV1Routes(t *testing.T) {
	r := newTestEngine()
	passthrough := func(c *gin.Context) { c.Next() }
	registerAPIV1Routes(r, routeDeps{
		authHandler:    handlers.NewAuthHandler(nil),
		claimHandler:   handlers.NewClaimHandler(nil),
		authMiddleware: passthrough,
	})

	want := map[string]bool{
		"POST /api/v1/auth/siwe/nonce":      false,
		"POST /api/v1/auth/siwe/verify":     false,
		"POST /api/v1/claims":               false,
		"GET /api/v1/claims":                false,
		"GET /api/v1/claims/:code":          false,
		"POST /api/v1/claims/:code/claim":   false,
		"POST /api/v1/claims/:code/reclaim": false,
	}
	for _, route := range r.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for key, seen := range want {
		assert.True(t, seen, "route not registered: %s", key)
	}
}
