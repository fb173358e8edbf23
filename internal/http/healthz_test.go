package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fleet-service/internal/ws"
)

func TestHealthzReportsClientCount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := &Handler{hub: ws.NewHub(zerolog.Nop()), log: zerolog.Nop()}
	router := gin.New()
	router.GET("/healthz", handler.healthz)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d, want 200", rec.Code)
	}

	var body struct {
		Status    string `json:"status"`
		WSClients int    `json:"ws_clients"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("status = %q, want ok", body.Status)
	}
	if body.WSClients != 0 {
		t.Fatalf("ws_clients = %d, want 0", body.WSClients)
	}
}
