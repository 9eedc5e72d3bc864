package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kryon-dev/kir/el"
	"github.com/kryon-dev/kir/pkg/kir"
)

func writeTestDocument(t *testing.T) string {
	t.Helper()
	root := el.Column().AddChild(el.Text("hello"))
	doc := kir.Encode(root)
	path := filepath.Join(t.TempDir(), "app.kir")
	if err := kir.WriteFile(doc, path, true); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func newTestServer(t *testing.T, path string) *Server {
	t.Helper()
	return New(Config{Path: path, Registry: prometheus.NewRegistry()})
}

func get(t *testing.T, srv *Server, target string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	body, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return rec.Code, string(body)
}

func TestServerHealthz(t *testing.T) {
	srv := newTestServer(t, writeTestDocument(t))

	code, body := get(t, srv, "/healthz")
	if code != http.StatusOK {
		t.Fatalf("GET /healthz status = %d, want %d", code, http.StatusOK)
	}
	if body != "{\"status\":\"ok\"}\n" {
		t.Errorf("GET /healthz body = %q", body)
	}
}

func TestServerDocument(t *testing.T) {
	srv := newTestServer(t, writeTestDocument(t))

	code, body := get(t, srv, "/document")
	if code != http.StatusOK {
		t.Fatalf("GET /document status = %d, want %d", code, http.StatusOK)
	}
	if !strings.Contains(body, `"version": "2.0"`) {
		t.Errorf("GET /document body missing version: %q", body)
	}
	if !strings.Contains(body, `"type": "Text"`) {
		t.Errorf("GET /document body missing Text node: %q", body)
	}
}

func TestServerDocumentLanguageOverride(t *testing.T) {
	path := writeTestDocument(t)
	srv := New(Config{Path: path, Language: "python", Registry: prometheus.NewRegistry()})

	_, body := get(t, srv, "/document")
	if !strings.Contains(body, `"language": "python"`) {
		t.Errorf("GET /document body missing overridden language: %q", body)
	}

	// The override must not stick to the shared document.
	doc, err := srv.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if doc.Metadata.Language == "python" {
		t.Error("language override mutated the loaded document")
	}
}

func TestServerSource(t *testing.T) {
	srv := newTestServer(t, writeTestDocument(t))

	code, body := get(t, srv, "/source")
	if code != http.StatusOK {
		t.Fatalf("GET /source status = %d, want %d", code, http.StatusOK)
	}
	if !strings.Contains(body, "func BuildTree()") {
		t.Errorf("GET /source body missing BuildTree: %q", body)
	}
	if !strings.Contains(body, `el.Text("hello")`) {
		t.Errorf("GET /source body missing Text constructor: %q", body)
	}
}

func TestServerMissingFile(t *testing.T) {
	srv := newTestServer(t, filepath.Join(t.TempDir(), "missing.kir"))

	for _, target := range []string{"/document", "/source"} {
		code, _ := get(t, srv, target)
		if code != http.StatusUnprocessableEntity {
			t.Errorf("GET %s status = %d, want %d", target, code, http.StatusUnprocessableEntity)
		}
	}

	// Health stays green even when the document is broken.
	if code, _ := get(t, srv, "/healthz"); code != http.StatusOK {
		t.Errorf("GET /healthz status = %d, want %d", code, http.StatusOK)
	}
}

func TestServerInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.kir")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := newTestServer(t, path)

	code, _ := get(t, srv, "/document")
	if code != http.StatusUnprocessableEntity {
		t.Errorf("GET /document status = %d, want %d", code, http.StatusUnprocessableEntity)
	}
}

func TestServerReload(t *testing.T) {
	path := writeTestDocument(t)
	srv := newTestServer(t, path)

	updated := kir.Encode(el.Text("replaced"))
	if err := kir.WriteFile(updated, path, true); err != nil {
		t.Fatal(err)
	}
	srv.reload(Change{Path: path})

	_, body := get(t, srv, "/document")
	if !strings.Contains(body, "replaced") {
		t.Errorf("document not reloaded, body = %q", body)
	}
}

func TestServerReloadError(t *testing.T) {
	path := writeTestDocument(t)
	srv := newTestServer(t, path)

	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv.reload(Change{Path: path})

	if _, err := srv.Document(); err == nil {
		t.Error("Document() error = nil after broken reload")
	}
}

// The reload socket must upgrade through the full middleware chain,
// which wraps the response writer for logging, metrics, and tracing.
func TestServerWebSocketUpgrade(t *testing.T) {
	srv := newTestServer(t, writeTestDocument(t))

	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing /ws: %v", err)
	}
	defer conn.Close()

	waitForClients(t, srv.hub, 1)
	srv.hub.NotifyDocument("app.kir")

	msg := readMessage(t, conn)
	if msg.Type != ReloadTypeDocument {
		t.Errorf("msg.Type = %q, want %q", msg.Type, ReloadTypeDocument)
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, writeTestDocument(t))

	// Generate one observation first.
	get(t, srv, "/document")

	code, body := get(t, srv, "/metrics")
	if code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want %d", code, http.StatusOK)
	}
	if !strings.Contains(body, "kir_preview_requests_total") {
		t.Errorf("GET /metrics body missing request counter: %q", body)
	}
}
