package server

import (
	"founderdeck/internal/handlers"
	"founderdeck/internal/middlewares"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	// The gate sits inside LoadAndSave so rotated session cookies land on
	// redirect responses too.
	r.Use(ctx.SessionManager.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(middlewares.SessionGate)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/dist/assets"))))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/dist/static"))))
	r.Handle("/favicon.ico", http.FileServer(http.Dir("web/dist")))

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, "web/dist/index.html")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))

		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.AuthStatusHandler))
			r.Get("/login", ctx.HandlerFunc(handlers.GETLoginHandler))
			r.Get("/callback", ctx.HandlerFunc(handlers.GETCallbackHandler))
			r.Post("/logout", ctx.HandlerFunc(handlers.LogoutHandler))
		})

		r.Route("/github", func(r chi.Router) {
			r.Get("/connect", ctx.HandlerFunc(handlers.GETGitHubConnectHandler))
			r.Get("/callback", ctx.HandlerFunc(handlers.GETGitHubCallbackHandler))
			r.Get("/status", ctx.HandlerFunc(handlers.GETGitHubStatusHandler))
			r.Post("/disconnect", ctx.HandlerFunc(handlers.POSTGitHubDisconnectHandler))
		})

		r.Get("/dashboard", ctx.HandlerFunc(handlers.GETDashboardHandler))

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", ctx.HandlerFunc(handlers.GETProjectsHandler))
			r.Post("/", ctx.HandlerFunc(handlers.POSTProjectHandler))
			r.Put("/{id}", ctx.HandlerFunc(handlers.PUTProjectHandler))
			r.Delete("/{id}", ctx.HandlerFunc(handlers.DELETEProjectHandler))
		})

		r.Route("/revenue", func(r chi.Router) {
			r.Get("/", ctx.HandlerFunc(handlers.GETRevenueSourcesHandler))
			r.Post("/", ctx.HandlerFunc(handlers.POSTRevenueSourceHandler))
			r.Put("/{id}", ctx.HandlerFunc(handlers.PUTRevenueSourceHandler))
			r.Delete("/{id}", ctx.HandlerFunc(handlers.DELETERevenueSourceHandler))
		})

		r.Route("/ideas", func(r chi.Router) {
			r.Get("/", ctx.HandlerFunc(handlers.GETIdeasHandler))
			r.Post("/", ctx.HandlerFunc(handlers.POSTIdeaHandler))
			r.Put("/{id}", ctx.HandlerFunc(handlers.PUTIdeaHandler))
			r.Delete("/{id}", ctx.HandlerFunc(handlers.DELETEIdeaHandler))
		})

		r.Route("/habits", func(r chi.Router) {
			r.Get("/", ctx.HandlerFunc(handlers.GETHabitsHandler))
			r.Post("/", ctx.HandlerFunc(handlers.POSTHabitHandler))
			r.Put("/{id}", ctx.HandlerFunc(handlers.PUTHabitHandler))
			r.Post("/{id}/check", ctx.HandlerFunc(handlers.POSTHabitCheckHandler))
			r.Delete("/{id}", ctx.HandlerFunc(handlers.DELETEHabitHandler))
		})

		r.Route("/snippets", func(r chi.Router) {
			r.Get("/", ctx.HandlerFunc(handlers.GETSnippetsHandler))
			r.Post("/", ctx.HandlerFunc(handlers.POSTSnippetHandler))
			r.Put("/{id}", ctx.HandlerFunc(handlers.PUTSnippetHandler))
			r.Delete("/{id}", ctx.HandlerFunc(handlers.DELETESnippetHandler))
		})

		r.Route("/servers", func(r chi.Router) {
			r.Get("/", ctx.HandlerFunc(handlers.GETServersHandler))
			r.Post("/", ctx.HandlerFunc(handlers.POSTServerHandler))
			r.Put("/{id}", ctx.HandlerFunc(handlers.PUTServerHandler))
			r.Delete("/{id}", ctx.HandlerFunc(handlers.DELETEServerHandler))
		})

		r.Route("/acquisitions", func(r chi.Router) {
			r.Get("/", ctx.HandlerFunc(handlers.GETAcquisitionTargetsHandler))
			r.Post("/", ctx.HandlerFunc(handlers.POSTAcquisitionTargetHandler))
			r.Put("/{id}", ctx.HandlerFunc(handlers.PUTAcquisitionTargetHandler))
			r.Delete("/{id}", ctx.HandlerFunc(handlers.DELETEAcquisitionTargetHandler))
		})

		r.Post("/email/send", ctx.HandlerFunc(handlers.POSTEmailSendHandler))
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
