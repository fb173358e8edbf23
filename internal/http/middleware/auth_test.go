package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleet-service/internal/auth"
	"fleet-service/internal/model"
)

func newAuthRouter(manager *auth.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(manager), func(c *gin.Context) {
		principal, ok := MustPrincipal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "principal missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": principal.Email, "role": string(principal.Role)})
	})
	return router
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	manager := auth.NewManager("test-secret", time.Hour)
	token, err := manager.Issue(uuid.New(), "ops@example.com", model.AppRoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	router := newAuthRouter(manager)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthMiddlewareRejectsBadRequests(t *testing.T) {
	manager := auth.NewManager("test-secret", time.Hour)
	router := newAuthRouter(manager)

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer not-a-token",
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("case %s: expected 401, got %d", name, rec.Code)
		}
	}
}
