package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/sssviz/stream"
)

// Api serves the drawing client and the current diagram over HTTP.
type Api struct {
	controller *stream.Controller
	staticDir  string
}

// NewApi creates an instance of an Api.
func NewApi(controller *stream.Controller, staticDir string) *Api {
	a := new(Api)
	a.controller = controller
	a.staticDir = staticDir
	return a
}

// Handler gets the routes of the api.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(a.staticDir)))
	mux.HandleFunc("/frame", a.handleFrame)
	mux.HandleFunc("/control", a.handleControl)
	return mux
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	b, err := a.controller.Current().MarshalBinary()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

func (a *Api) handleControl(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var msg stream.ControlMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "malformed control message", http.StatusBadRequest)
		return
	}

	controls, err := a.controller.Apply(msg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(controls)
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}
