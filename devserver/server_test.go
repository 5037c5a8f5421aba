package devserver

import (
	"bufio"
	"context"
	"errors"
	"image/png"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/gridsketch/parameter"
)

func newRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":     "<html><body><canvas></canvas></BODY></html>",
		"style.css":      "body { margin: 0 }",
		"sub/index.html": "<p>no body tag</p>",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNewRejectsMissingRoot(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrRoot) {
		t.Errorf("err = %v, want ErrRoot", err)
	}
}

func TestStaticInjection(t *testing.T) {
	root := newRoot(t)

	tests := []struct {
		name       string
		live       bool
		path       string
		wantScript bool
		wantBody   string
	}{
		{"Index gets script", true, "/", true, "<canvas></canvas>"},
		{"Page without body tag", true, "/sub/", true, "<p>no body tag</p>"},
		{"Stylesheet untouched", true, "/style.css", false, "margin: 0"},
		{"Live reload off", false, "/", false, "<canvas></canvas>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(root, WithLiveReload(tt.live))
			if err != nil {
				t.Fatal(err)
			}
			rec := get(t, s.Handler(), tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			body := rec.Body.String()
			if got := strings.Contains(body, parameter.ReloadEventPath); got != tt.wantScript {
				t.Errorf("script injected = %v, want %v", got, tt.wantScript)
			}
			if !strings.Contains(body, tt.wantBody) {
				t.Errorf("body lost content: %q", body)
			}
		})
	}
}

func TestInjectReloadScriptPosition(t *testing.T) {
	out := string(InjectReloadScript([]byte("<body>a</body><!-- </body> --></body>")))
	if !strings.HasSuffix(out, ReloadScript+"</body>") {
		t.Errorf("script not before the last </body>: %q", out)
	}
	if got := string(InjectReloadScript([]byte("x"))); got != "x"+ReloadScript {
		t.Errorf("appended = %q", got)
	}
}

func TestResolveAddr(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		env     string
		want    string
		wantErr bool
	}{
		{"Default", 0, "", ":3000", false},
		{"Flag wins", 8080, "9000", ":8080", false},
		{"Environment", 0, "9000", ":9000", false},
		{"Bad environment", 0, "http", "", true},
		{"Out of range", 0, "70000", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveAddr(tt.port, func(string) string { return tt.env })
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v", err)
			}
			if got != tt.want {
				t.Errorf("addr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	s, err := New(newRoot(t), WithLiveReload(false))
	if err != nil {
		t.Fatal(err)
	}

	rec := get(t, s.Handler(), "/snapshot.png?columns=4&rows=3&frames=5&width=100&height=80&select=0,1;5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("image bounds = %v", b)
	}

	for _, bad := range []string{
		"/snapshot.png?frames=abc",
		"/snapshot.png?columns=2&rows=2&select=9",
		"/snapshot.png?width=0",
		"/snapshot.png?select=1,x",
		"/snapshot.png?columns=20000&rows=20000&frames=1",
		"/snapshot.png?width=NaN",
	} {
		if rec := get(t, s.Handler(), bad); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", bad, rec.Code)
		}
	}

	post := httptest.NewRecorder()
	s.Handler().ServeHTTP(post, httptest.NewRequest(http.MethodPost, "/snapshot.png", nil))
	if post.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d", post.Code)
	}
}

// readEvent returns the payload of the next SSE data line
func readEvent(t *testing.T, r *bufio.Reader) Message {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("reading events: %v", err)
		}
		if data, ok := strings.CutPrefix(strings.TrimSpace(line), "data: "); ok {
			var m Message
			if err := json.Unmarshal([]byte(data), &m); err != nil {
				t.Fatalf("decoding %q: %v", data, err)
			}
			return m
		}
	}
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Count() != n {
		if time.Now().After(deadline) {
			t.Fatalf("clients = %d, want %d", h.Count(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestEventStream(t *testing.T) {
	s, err := New(newRoot(t), WithLiveReload(false))
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+parameter.ReloadEventPath, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}

	r := bufio.NewReader(resp.Body)
	if m := readEvent(t, r); m.Type != MsgHello {
		t.Fatalf("first event = %+v", m)
	}
	waitClients(t, s.Hub(), 1)

	s.Hub().Broadcast(Message{Type: MsgReload, Path: "index.html"})
	if m := readEvent(t, r); m.Type != MsgReload || m.Path != "index.html" {
		t.Errorf("event = %+v", m)
	}

	cancel()
	waitClients(t, s.Hub(), 0)
}

func TestWebSocket(t *testing.T) {
	s, err := New(newRoot(t), WithLiveReload(false))
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + parameter.ReloadSocketPath
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()
	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))

	var m Message
	if err := ws.ReadJSON(&m); err != nil || m.Type != MsgHello {
		t.Fatalf("hello = %+v, %v", m, err)
	}
	waitClients(t, s.Hub(), 1)

	s.Hub().Broadcast(Message{Type: MsgReload, Path: "a.js"})
	if err := ws.ReadJSON(&m); err != nil || m.Type != MsgReload || m.Path != "a.js" {
		t.Errorf("reload = %+v, %v", m, err)
	}

	ws.Close()
	waitClients(t, s.Hub(), 0)
}

func TestServeReloadsOnFileChange(t *testing.T) {
	root := newRoot(t)
	s, err := New(root)
	if err != nil {
		t.Fatal(err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	served := make(chan error, 1)
	go func() { served <- s.Serve(ctx, ln) }()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+ln.Addr().String()+parameter.ReloadEventPath, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	r := bufio.NewReader(resp.Body)
	readEvent(t, r)
	waitClients(t, s.Hub(), 1)

	// The watcher starts alongside the listener, give it a moment to register
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(root, "style.css"), []byte("body { margin: 1px }"), 0o644); err != nil {
		t.Fatal(err)
	}

	events := make(chan Message, 1)
	go func() {
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			if data, ok := strings.CutPrefix(strings.TrimSpace(line), "data: "); ok {
				var m Message
				if json.Unmarshal([]byte(data), &m) == nil {
					events <- m
					return
				}
			}
		}
	}()

	select {
	case m := <-events:
		if m.Type != MsgReload || m.Path != "style.css" {
			t.Errorf("event = %+v", m)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after file change")
	}

	cancel()
	select {
	case err := <-served:
		if err != nil {
			t.Errorf("Serve = %v", err)
		}
	case <-time.After(parameter.ShutdownGracePeriod + time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	_, _ = io.Copy(io.Discard, resp.Body)
}
