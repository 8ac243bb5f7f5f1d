package docsite

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHandlerServesRoot(t *testing.T) {
	handler := Handler("")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /: got status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<!DOCTYPE html>") {
		t.Error("GET /: response doesn't contain HTML doctype")
	}
	if !strings.Contains(w.Body.String(), "Punchline Core API") {
		t.Error("GET /: response doesn't contain the docs title")
	}
}

func TestHandlerServesStaticAsset(t *testing.T) {
	handler := Handler("")

	req := httptest.NewRequest(http.MethodGet, "/styles.css", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /styles.css: got status %d, want 200", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("GET /styles.css: empty response body")
	}
}

func TestHandlerFallback(t *testing.T) {
	handler := Handler("")

	req := httptest.NewRequest(http.MethodGet, "/no/such/page", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /no/such/page: got status %d, want 200 (fallback)", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<!DOCTYPE html>") {
		t.Error("GET /no/such/page: fallback didn't serve index.html")
	}
}

func TestHandlerFilesystemMode(t *testing.T) {
	dir := t.TempDir()
	indexContent := `<!DOCTYPE html><html><body>filesystem docs</body></html>`
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(indexContent), 0644); err != nil {
		t.Fatal(err)
	}

	handler := Handler(dir)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("filesystem GET /: got status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "filesystem docs") {
		t.Errorf("filesystem GET /: expected filesystem content, got %q", w.Body.String())
	}
}

func TestHandlerFilesystemModeMissingDirFallsBack(t *testing.T) {
	handler := Handler("/nonexistent/docs/dir")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /: got status %d, want 200 (embedded fallback)", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Punchline Core API") {
		t.Error("GET /: expected embedded docs when dir is missing")
	}
}
