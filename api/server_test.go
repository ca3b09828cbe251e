package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matt-g-everett/sssviz/diagram"
	"github.com/matt-g-everett/sssviz/results"
	"github.com/matt-g-everett/sssviz/stream"
)

const domainJSON = `{"query_len": 300, "matches": [
  {"accession": "PF00001", "name": "7tm_1", "database": "PFAM",
   "locations": [{"start": 40, "end": 290, "score": 2e-40}]},
  {"accession": "PS50262", "name": "G_PROTEIN_RECEP_F1_2", "database": "PROSITE",
   "locations": [{"start": 45, "end": 285, "score": 1e-3}]}
]}`

func testApi(t *testing.T) *Api {
	t.Helper()
	dom, err := results.LoadDomains(strings.NewReader(domainJSON))
	if err != nil {
		t.Fatalf("loading domains: %v", err)
	}
	cfg := stream.DefaultConfig()
	cfg.Display.TransitionSecs = 0
	c, err := stream.NewController(cfg, diagram.Input{Domains: dom})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewApi(c, t.TempDir())
}

func TestFrame(t *testing.T) {
	a := testApi(t)
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/frame", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var f struct {
		Diagram struct {
			Domains []struct {
				Accession string `json:"accession"`
				Locations []struct {
					Fill string `json:"fill"`
				} `json:"locations"`
			} `json:"domains"`
		} `json:"diagram"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Diagram.Domains) != 2 || f.Diagram.Domains[0].Accession != "PF00001" {
		t.Fatalf("unexpected domains: %+v", f.Diagram.Domains)
	}
	if !strings.HasPrefix(f.Diagram.Domains[0].Locations[0].Fill, "rgb(") {
		t.Errorf("unexpected fill %q", f.Diagram.Domains[0].Locations[0].Fill)
	}

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/frame", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /frame status = %d", rec.Code)
	}
}

func TestControl(t *testing.T) {
	a := testApi(t)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"type":"control","colorScheme":"sequential","scaleType":"fixed"}`)
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/control", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var controls struct {
		ColorScheme string `json:"colorScheme"`
		ScaleType   string `json:"scaleType"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&controls); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if controls.ColorScheme != "sequential" || controls.ScaleType != "fixed" {
		t.Errorf("unexpected controls: %+v", controls)
	}

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/control", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d", rec.Code)
	}
}
