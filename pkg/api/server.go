package api

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/imbecility/mp3-submit/pkg/dom"
	"github.com/imbecility/mp3-submit/pkg/submit"
)

var pageTmpl = template.Must(template.New("index").Parse(tmpl))

type Server struct {
	Port    int
	Handler *submit.Handler
	Page    *dom.ConvertPage
	// ServiceBase is prepended to root-relative download links.
	ServiceBase string
}

// ConvertResult is the JSON answer of POST /convert.
type ConvertResult struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Page    dom.PageState `json:"page"`
}

type pageView struct {
	dom.PageState
	HiddenClass string
	LinkURL     string
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/convert", s.handleConvert)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("Starting web UI", "addr", fmt.Sprintf("http://localhost:%d", s.Port), "service", s.ServiceBase)
	return http.ListenAndServe(addr, s.Routes())
}

// handleConvert is the click on the convert control.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	videoURL := r.PostFormValue(dom.VideoURLName)
	s.Page.VideoURL.SetValue(videoURL)
	slog.Info("Convert activated", "remote", r.RemoteAddr)

	// The shared input may be overwritten by another visitor before this
	// request is sent, so submit the value this request carried.
	_, err := s.Handler.Submit(r.Context(), videoURL)

	if !strings.Contains(r.Header.Get("Accept"), "application/json") {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	result := ConvertResult{Success: err == nil, Page: s.Page.Snapshot()}
	if err != nil {
		result.Error = err.Error()
	}
	s.respondJSON(w, result)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := s.Page.Snapshot()
	view := pageView{
		PageState:   state,
		HiddenClass: dom.HiddenClass,
		LinkURL:     s.linkURL(state.DownloadHref),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, view); err != nil {
		slog.Error("Template execution failed", "error", err, "remote", r.RemoteAddr)
	}
}

func (s *Server) linkURL(href string) string {
	if s.ServiceBase == "" || !strings.HasPrefix(href, "/") {
		return href
	}
	return strings.TrimSuffix(s.ServiceBase, "/") + href
}

func (s *Server) respondJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	jerr := json.NewEncoder(w).Encode(data)
	if jerr != nil {
		slog.Error("JSON encoding failed", "error", jerr)
	}
}
