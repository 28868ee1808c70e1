package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"goal_tracker/internal/platform/db"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakePinger struct {
	err     error
	dialect db.Dialect
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func (f fakePinger) Dialect() db.Dialect {
	return f.dialect
}

func setupRouter(t *testing.T, pingErr error) *gin.Engine {
	t.Helper()
	dialect, err := db.NewDialect(db.DriverSQLite)
	if err != nil {
		t.Fatalf("failed to build dialect: %v", err)
	}
	h := Health(fakePinger{err: pingErr, dialect: dialect})

	r := gin.New()
	r.GET("/api/health", h)
	r.HEAD("/api/health", h)
	return r
}

func TestHealth_GET(t *testing.T) {
	t.Parallel()

	router := setupRouter(t, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %q", response["status"])
	}
	if response["database"] != "connected" {
		t.Errorf("expected database 'connected', got %q", response["database"])
	}
	if response["database_type"] != "SQLite" {
		t.Errorf("expected database_type 'SQLite', got %q", response["database_type"])
	}

	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
	}
}

func TestHealth_HEAD(t *testing.T) {
	t.Parallel()

	router := setupRouter(t, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodHead, "/api/health", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body for HEAD request, got %d bytes", w.Body.Len())
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
	}
}

func TestHealth_DatabaseDown(t *testing.T) {
	t.Parallel()

	router := setupRouter(t, errors.New("connection refused"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["status"] != "unhealthy" || response["database"] != "disconnected" {
		t.Errorf("unexpected body %v", response)
	}
	if _, ok := response["database_type"]; ok {
		t.Error("database_type must not be reported when the database is down")
	}
}
