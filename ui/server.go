package ui

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cmplot/plot"
)

// Server renders a built figure in the browser: an HTML page wiring the
// figure JSON into plotly.js, plus the raw JSON for programmatic use.
type Server struct {
	router chi.Router
	figure *plot.Figure
}

var pageTemplate = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>{{.Title}}</title>
	<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
</head>
<body>
	<div id="cmplot" style="width: 100%; height: 95vh;"></div>
	<script>
		fetch("/figure.json")
			.then((resp) => resp.json())
			.then((fig) => Plotly.newPlot("cmplot", fig.data, fig.layout, {responsive: true}));
	</script>
</body>
</html>
`))

// NewServer creates a viewer for the figure.
func NewServer(figure *plot.Figure) *Server {
	s := &Server{
		router: chi.NewRouter(),
		figure: figure,
	}
	s.router.Use(middleware.Logger)
	s.router.Get("/", s.handleIndex)
	s.router.Get("/figure.json", s.handleFigureJSON)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start runs the server on addr, blocking until it exits.
func (s *Server) Start(addr string) error {
	log.Printf("[ui] serving figure on http://%s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, map[string]string{"Title": s.figure.Layout.Title.Text}); err != nil {
		log.Printf("[ui] template render failed: %v", err)
	}
}

func (s *Server) handleFigureJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.figure); err != nil {
		log.Printf("[ui] figure encode failed: %v", err)
	}
}
