package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestIDGenerated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())

	var inContext string
	router.GET("/test", func(c *gin.Context) {
		inContext = RequestIDFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	header := resp.Header().Get("X-Request-Id")
	if header == "" {
		t.Fatal("expected X-Request-Id header")
	}
	if inContext != header {
		t.Fatalf("context id %q does not match header %q", inContext, header)
	}
}

func TestRequestIDEchoesIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-Id", "incoming-id")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if got := resp.Header().Get("X-Request-Id"); got != "incoming-id" {
		t.Fatalf("expected incoming-id, got %q", got)
	}
}
