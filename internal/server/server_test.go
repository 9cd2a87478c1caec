package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"

	"github.com/drafterhq/drafter/pkg/drawing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(log.New(io.Discard)).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestSaveAndLoad(t *testing.T) {
	ts := newTestServer(t)
	path := filepath.Join(t.TempDir(), "drawing.json")

	resp := postJSON(t, ts.URL+"/v1/files/save", map[string]string{
		"path": path,
		"data": `[{"shape_type":"line"}]`,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("save status = %d", resp.StatusCode)
	}
	var save drawing.SaveResult
	decodeInto(t, resp, &save)
	if !save.Success {
		t.Fatalf("save failed: %s", save.Message)
	}

	resp = postJSON(t, ts.URL+"/v1/files/load", map[string]string{"path": path})
	var load drawing.LoadResult
	decodeInto(t, resp, &load)
	if !load.Success || load.Data == nil || *load.Data != `[{"shape_type":"line"}]` {
		t.Errorf("load result = %+v", load)
	}
}

func TestLoadMissingFileIsHTTP200(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/v1/files/load", map[string]string{"path": "/nonexistent/file"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (failure travels in the result body)", resp.StatusCode)
	}
	var load drawing.LoadResult
	decodeInto(t, resp, &load)
	if load.Success || load.Message == "" {
		t.Errorf("load result = %+v", load)
	}
}

func TestExportAndImport(t *testing.T) {
	ts := newTestServer(t)
	path := filepath.Join(t.TempDir(), "drawing.dxf")

	resp := postJSON(t, ts.URL+"/v1/dxf/export", map[string]string{
		"path":        path,
		"shapes_json": `[{"shape_type":"circle","center":{"x":1,"y":2},"radius":3}]`,
	})
	var save drawing.SaveResult
	decodeInto(t, resp, &save)
	if !save.Success {
		t.Fatalf("export failed: %s", save.Message)
	}

	resp = postJSON(t, ts.URL+"/v1/dxf/import", map[string]string{"path": path})
	var load drawing.LoadResult
	decodeInto(t, resp, &load)
	if !load.Success || load.Data == nil {
		t.Fatalf("import result = %+v", load)
	}
	if !strings.Contains(*load.Data, `"shape_type":"circle"`) {
		t.Errorf("imported data = %s", *load.Data)
	}
}

func TestExportBadShapesJSON(t *testing.T) {
	ts := newTestServer(t)
	path := filepath.Join(t.TempDir(), "drawing.dxf")

	resp := postJSON(t, ts.URL+"/v1/dxf/export", map[string]string{
		"path":        path,
		"shapes_json": "{not valid}",
	})
	var save drawing.SaveResult
	decodeInto(t, resp, &save)
	if save.Success {
		t.Fatal("export should fail")
	}
	if !strings.HasPrefix(save.Message, "Failed to parse shapes:") {
		t.Errorf("message = %q", save.Message)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed export should not create the file")
	}
}

func TestBadRequestBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/files/load", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRequestIDHeader(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("response should carry a generated X-Request-ID")
	}

	// A client-supplied ID is echoed back.
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	io.Copy(io.Discard, resp2.Body)
	if got := resp2.Header.Get("X-Request-ID"); got != "test-id-123" {
		t.Errorf("X-Request-ID = %q, want test-id-123", got)
	}
}
