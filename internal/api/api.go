// Package api is the optional HTTP shell around a picker: a websocket that
// streams snapshots and accepts intents, a REST endpoint for intents, and
// the Prometheus metrics.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
	"github.com/ironsheep/color-picker-mcp/internal/metrics"
	"github.com/ironsheep/color-picker-mcp/internal/picker"
)

const (
	pingInterval = 2 * time.Second
	writeTimeout = 10 * time.Second
)

type Api struct {
	srv    http.Server
	mux    *http.ServeMux
	picker *picker.Picker
}

// ErrorResponse is the body of a rejected request. Snapshot is the
// unchanged state, so a view can restore its fields.
type ErrorResponse struct {
	Error    string           `json:"error"`
	Snapshot *picker.Snapshot `json:"snapshot,omitempty"`
}

func New(addr string, p *picker.Picker) *Api {
	a := &Api{}
	a.mux = http.NewServeMux()
	a.picker = p
	a.srv.Addr = addr
	a.srv.Handler = a.mux

	a.mux.HandleFunc("GET /api/color", a.getColor)
	a.mux.HandleFunc("POST /api/intent", a.postIntent)
	a.mux.HandleFunc("GET /api/labels", a.getLabels)
	a.mux.HandleFunc("GET /api/ws", a.handleWebsocket)
	a.mux.Handle("GET /metrics", metrics.Handler())
	return a
}

// Handler returns the routes, for mounting or testing.
func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

func (a *Api) Shutdown(ctx context.Context) error {
	return a.srv.Shutdown(ctx)
}

// ServeInBackground starts the shell on addr. An empty addr disables it and
// returns nil.
func ServeInBackground(addr string, p *picker.Picker) *Api {
	if addr == "" {
		return nil
	}
	theApi := New(addr, p)

	log.Printf("starting web server on %s\n", addr)
	go func() {
		err := theApi.Serve()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("could not start web server: %s", err)
		}
	}()
	return theApi
}

func (a *Api) getColor(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.picker.Snapshot())
}

// Labels is the window title and the caption of every field, in display
// order.
type Labels struct {
	Title  string       `json:"title"`
	Fields []FieldLabel `json:"fields"`
}

type FieldLabel struct {
	Format string `json:"format"`
	Label  string `json:"label"`
}

func (a *Api) getLabels(w http.ResponseWriter, _ *http.Request) {
	labels := Labels{Title: picker.Title}
	for _, f := range colorspace.Formats {
		labels.Fields = append(labels.Fields, FieldLabel{Format: string(f), Label: picker.Label(f)})
	}
	writeJSON(w, http.StatusOK, labels)
}

func (a *Api) postIntent(w http.ResponseWriter, req *http.Request) {
	var in picker.Intent
	if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("could not decode json request: %s", err),
		})
		return
	}

	snap, err := a.picker.Apply(in)
	metrics.ObserveToolCall("http_intent", err)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Snapshot: &snap})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("could not write response: %s\n", err.Error())
	}
}
