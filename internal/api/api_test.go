package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
	"github.com/ironsheep/color-picker-mcp/internal/picker"
)

func newTestApi(t *testing.T, hex string) (*picker.Picker, *httptest.Server) {
	t.Helper()
	c, err := colorspace.FromHex(hex)
	if err != nil {
		t.Fatalf("FromHex(%q) failed: %v", hex, err)
	}
	p := picker.New(c)
	srv := httptest.NewServer(New("", p).Handler())
	t.Cleanup(func() {
		p.Close()
		srv.Close()
	})
	return p, srv
}

func postIntent(t *testing.T, srv *httptest.Server, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/intent", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/intent failed: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp, data
}

func TestGetColor(t *testing.T) {
	_, srv := newTestApi(t, "#0c2238")

	resp, err := http.Get(srv.URL + "/api/color")
	if err != nil {
		t.Fatalf("GET /api/color failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
	var snap picker.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snap.HSV != "210°, 79%, 22%" {
		t.Errorf("HSV: got %s, want 210°, 79%%, 22%%", snap.HSV)
	}
}

func TestPostIntent(t *testing.T) {
	p, srv := newTestApi(t, "#0c2238")

	resp, body := postIntent(t, srv, `{"kind":"rgb","text":"64, 128, 64"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (%s)", resp.StatusCode, body)
	}
	var snap picker.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snap.Hex != "#408040" {
		t.Errorf("Hex: got %s, want #408040", snap.Hex)
	}
	if got := p.Snapshot().Hex; got != "#408040" {
		t.Errorf("picker Hex: got %s, want #408040", got)
	}
}

func TestPostIntent_UppercaseKind(t *testing.T) {
	_, srv := newTestApi(t, "#0c2238")

	resp, body := postIntent(t, srv, `{"kind":"HEX","text":"#408040"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (%s)", resp.StatusCode, body)
	}
	var snap picker.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snap.HSL != "120°, 33%, 38%" {
		t.Errorf("HSL: got %s, want 120°, 33%%, 38%%", snap.HSL)
	}
}

func TestPostIntent_Rejected(t *testing.T) {
	p, srv := newTestApi(t, "#0c2238")

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"invalid text", `{"kind":"cmyk","text":"101%, 0%, 0%, 0%"}`, http.StatusUnprocessableEntity},
		{"unknown kind", `{"kind":"lab","text":"1"}`, http.StatusUnprocessableEntity},
		{"not json", `{"kind":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postIntent(t, srv, tt.body)
			if resp.StatusCode != tt.status {
				t.Fatalf("status: got %d, want %d", resp.StatusCode, tt.status)
			}
			var e ErrorResponse
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatalf("failed to decode error: %v", err)
			}
			if e.Error == "" {
				t.Error("error message is empty")
			}
			if tt.status == http.StatusUnprocessableEntity {
				if e.Snapshot == nil || e.Snapshot.Hex != "#0c2238" {
					t.Errorf("snapshot: got %+v, want the unchanged color", e.Snapshot)
				}
			}
		})
	}

	if got := p.Snapshot().Hex; got != "#0c2238" {
		t.Errorf("rejected intents changed the color to %s", got)
	}
}

func TestPostIntent_MethodNotAllowed(t *testing.T) {
	_, srv := newTestApi(t, "#0c2238")

	resp, err := http.Get(srv.URL + "/api/intent")
	if err != nil {
		t.Fatalf("GET /api/intent failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", resp.StatusCode)
	}
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("websocket dial failed: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readSnapshot(t *testing.T, ws *websocket.Conn) picker.Snapshot {
	t.Helper()
	if err := ws.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline failed: %v", err)
	}
	var snap picker.Snapshot
	if err := ws.ReadJSON(&snap); err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	return snap
}

func TestWebsocket_StreamsSnapshots(t *testing.T) {
	p, srv := newTestApi(t, "#0c2238")
	ws := dialWS(t, srv)

	if snap := readSnapshot(t, ws); snap.Hex != "#0c2238" {
		t.Errorf("initial snapshot: got %s, want #0c2238", snap.Hex)
	}

	if _, err := p.Apply(picker.HueChanged(120)); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if snap := readSnapshot(t, ws); snap.Hue != 120 {
		t.Errorf("update hue: got %g, want 120", snap.Hue)
	}

	// Intents sent over the socket come back as updates.
	if err := ws.WriteJSON(picker.HexChanged("#abc")); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if snap := readSnapshot(t, ws); snap.RGB != "170, 187, 204" {
		t.Errorf("ws intent RGB: got %s, want 170, 187, 204", snap.RGB)
	}
}

func TestWebsocket_ClosesWithPicker(t *testing.T) {
	p, srv := newTestApi(t, "#0c2238")
	ws := dialWS(t, srv)
	readSnapshot(t, ws)

	p.Close()

	if err := ws.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("SetReadDeadline failed: %v", err)
	}
	_, _, err := ws.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("ReadMessage: got %v, want a normal close", err)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, srv := newTestApi(t, "#0c2238")
	postIntent(t, srv, `{"kind":"hex","text":"#123456"}`)

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	for _, want := range []string{
		"color_picker_broadcasts_total",
		"color_picker_subscribers",
		`color_picker_tool_calls_total{outcome="ok",tool="http_intent"}`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("/metrics is missing %s", want)
		}
	}
}

func TestServeInBackground_Disabled(t *testing.T) {
	if a := ServeInBackground("", nil); a != nil {
		t.Error("an empty address should disable the shell")
	}
}

func TestGetLabels(t *testing.T) {
	_, srv := newTestApi(t, "#0c2238")

	resp, err := http.Get(srv.URL + "/api/labels")
	if err != nil {
		t.Fatalf("GET /api/labels failed: %v", err)
	}
	defer resp.Body.Close()

	var got Labels
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode labels: %v", err)
	}
	if got.Title != "Color picker" {
		t.Errorf("Title: got %q, want Color picker", got.Title)
	}
	var captions []string
	for _, f := range got.Fields {
		captions = append(captions, f.Label)
	}
	if strings.Join(captions, ",") != "HEX,RGB,CMYK,HSV,HSL" {
		t.Errorf("labels: got %v, want HEX,RGB,CMYK,HSV,HSL", captions)
	}
}
