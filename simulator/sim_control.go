package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rook-computer/pixeled/internal/app"
	"github.com/rook-computer/pixeled/internal/input"
	"github.com/rook-computer/pixeled/internal/render"
	"github.com/rook-computer/pixeled/internal/web"
)

// SimControl drives an editor running against an in-memory display and a
// channel keyboard.
type SimControl struct {
	App      *app.App
	Renderer *render.MemoryRenderer
	Keys     *input.ChannelSource
}

func NewSimControl(a *app.App, renderer *render.MemoryRenderer, keys *input.ChannelSource) *SimControl {
	return &SimControl{App: a, Renderer: renderer, Keys: keys}
}

// PushKeys queues the named keys in order. Names are validated before any key
// is queued.
func (c *SimControl) PushKeys(names []string) error {
	keys := make([]input.Key, 0, len(names))
	for _, name := range names {
		k, ok := input.ParseKey(name)
		if !ok {
			return fmt.Errorf("unknown key %q", name)
		}
		keys = append(keys, k)
	}
	return c.Keys.Push(keys...)
}

func registerSimEndpoints(mux *http.ServeMux, control *SimControl) {
	mux.HandleFunc("/sim/frame.png", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		if control.Renderer.Frames() == 0 {
			writeSimError(w, http.StatusServiceUnavailable, render.ErrNoFrame.Error())
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		if err := control.Renderer.WritePNG(w); err != nil {
			control.App.Logger.Errorf("sim", "frame encode: %v", err)
		}
	})

	mux.HandleFunc("/sim/state", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		writeSimJSON(w, http.StatusOK, control.App.Store.Snapshot())
	})

	mux.HandleFunc("/sim/keys", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeSimError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		var body struct {
			Keys []string `json:"keys"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeSimError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if err := control.PushKeys(body.Keys); err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, input.ErrQueueFull) {
				status = http.StatusTooManyRequests
			}
			writeSimError(w, status, err.Error())
			return
		}
		writeSimJSON(w, http.StatusOK, map[string]any{"ok": true, "queued": len(body.Keys)})
	})

	mux.Handle("/sim/qr.png", web.QRCodeHandler(func(r *http.Request) string {
		return "http://" + r.Host + "/sim/frame.png"
	}, 0))
}

func writeSimJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSimError(w http.ResponseWriter, status int, message string) {
	writeSimJSON(w, status, map[string]any{"error": message})
}
