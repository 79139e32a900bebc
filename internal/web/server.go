// Package web serves the two viewer pages: the chronological challenge
// feed and the aggregated leaderboard.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/thomaswright/algorithm-arena/internal/config"
	"github.com/thomaswright/algorithm-arena/internal/domain"
	"github.com/thomaswright/algorithm-arena/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

var places = []string{"1st", "2nd", "3rd"}

// ModelProvider hands out the latest derived view state.
type ModelProvider interface {
	Model() *usecase.Model
}

// Server renders the feed and leaderboard pages.
type Server struct {
	provider ModelProvider
	site     config.SiteConfig
	tmpl     *template.Template
	router   *mux.Router
	logger   *slog.Logger
}

// NewServer parses the embedded templates and sets up routes.
func NewServer(provider ModelProvider, site config.SiteConfig, log *slog.Logger) (*Server, error) {
	funcs := template.FuncMap{
		// Title and summary fragments come out of the markdown renderer
		// already as HTML.
		"raw": func(s string) template.HTML { return template.HTML(s) },
		"place": func(rank int) string {
			if rank >= 0 && rank < len(places) {
				return places[rank]
			}
			return ""
		},
		"profileURL": func(username string) string {
			return "https://github.com/" + username
		},
		"inc": func(i int) int { return i + 1 },
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		provider: provider,
		site:     site,
		tmpl:     tmpl,
		logger:   log,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleFeed).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard", s.handleLeaderboard).Methods(http.MethodGet)
	s.router = r

	return s, nil
}

// Router exposes the configured handler.
func (s *Server) Router() http.Handler {
	return s.router
}

type feedData struct {
	Site    config.SiteConfig
	Records []domain.ChallengeRecord
}

type boardData struct {
	Site    config.SiteConfig
	Entries []domain.LeaderboardEntry
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	model := s.provider.Model()
	s.render(w, "feed.html", feedData{Site: s.site, Records: model.Records})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	model := s.provider.Model()
	s.render(w, "leaderboard.html", boardData{Site: s.site, Entries: model.Board.Displayed()})
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		if s.logger != nil {
			s.logger.Error("render page", "template", name, "error", err)
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
