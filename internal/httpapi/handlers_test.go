package httpapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tariquesani/aruuz-nigar/internal/cache"
	"github.com/tariquesani/aruuz-nigar/internal/catalog"
	"github.com/tariquesani/aruuz-nigar/internal/config"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return setupTestRouterWithCache(t, nil)
}

func setupTestRouterWithCache(t *testing.T, c *cache.Cache) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	defaults, err := config.Defaults()
	if err != nil {
		t.Fatalf("config.Defaults: %v", err)
	}
	h := NewHandlers(catalog.BuildCatalog(), defaults, c, slog.Default())

	router := gin.New()
	RegisterRoutes(router.Group("/"), h)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleIslahExactMeter(t *testing.T) {
	router := setupTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/islah", IslahRequest{Text: "-=== -=== -=== -==="})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp IslahResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.AnalysisLevel != "meter" {
		t.Errorf("AnalysisLevel = %q, want \"meter\"", resp.AnalysisLevel)
	}
	if !resp.Summary.ConformsExactly {
		t.Errorf("ConformsExactly = false, want true for an exact Hazaj match")
	}
	found := false
	for _, r := range resp.Results {
		if r.MeterName == "ہزج مثمن سالم" {
			found = true
		}
	}
	if !found {
		t.Errorf("Results = %+v, want the Hazaj meter among them", resp.Results)
	}
}

func TestHandleIslahPopulatesFeetCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "badger")
	c, err := cache.Open(dir, nil)
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	defer c.Close()

	router := setupTestRouterWithCache(t, c)
	w := doJSON(t, router, http.MethodPost, "/api/islah", IslahRequest{Text: "-=== -=== -=== -==="})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp IslahResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Results) == 0 {
		t.Fatal("expected at least one exact result")
	}

	key := cache.FeetKey(resp.Results[0].MeterID, resp.FullCode)
	if _, ok := c.GetFeet(key); !ok {
		t.Fatal("handling the request should have populated the feet cache for (meter id, code)")
	}
}

func TestHandleIslahEmptyText(t *testing.T) {
	router := setupTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/islah", IslahRequest{Text: "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for empty text", w.Code)
	}
}

func TestHandleIslahBadCode(t *testing.T) {
	router := setupTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/islah", IslahRequest{Text: "-=q="})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for an invalid code character", w.Code)
	}
}

func TestHandleMeterDominant(t *testing.T) {
	router := setupTestRouter(t)
	req := DominantRequest{Results: []DominantResultItem{
		{MeterName: "ہزج مسدس سالم", Feet: "مفاعیلن مفاعیلن مفاعیلن"},
	}}
	w := doJSON(t, router, http.MethodPost, "/api/meter/dominant", req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestHandleMeterDominantEmptyResults(t *testing.T) {
	router := setupTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/meter/dominant", DominantRequest{})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with an empty body for no results", w.Code)
	}
	if w.Body.String() != "{}" {
		t.Errorf("body = %q, want \"{}\"", w.Body.String())
	}
}
