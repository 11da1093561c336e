package api

import (
	"bytes"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/middleware"
)

// IndexPath is where GET / redirects to.
const IndexPath = "/static/index.html"

// NewRouter builds the HTTP handler for the whole service.
func NewRouter(cfg *config.Settings, store ActivityStore, assets fs.FS) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
	})
	// http.FileServer answers .../index.html with a redirect to ./
	r.Get(IndexPath, serveIndex(assets))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets))))

	r.Get("/health", NewHealthHandler(cfg.Version, store).ServeHTTP)

	r.Mount("/activities", NewActivitiesHandler(store).Routes())

	return r
}

// serveIndex writes index.html from assets at its own path.
func serveIndex(assets fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(assets, "index.html")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(data))
	}
}
