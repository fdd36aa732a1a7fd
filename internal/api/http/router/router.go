package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	// Registers the generated OpenAPI document.
	_ "github.com/edupost/edupost-server/docs"
	"github.com/edupost/edupost-server/internal/api/http/handler"
	"github.com/edupost/edupost-server/internal/api/http/middleware"
	"github.com/edupost/edupost-server/internal/config"
	"github.com/edupost/edupost-server/internal/logger"
	"github.com/edupost/edupost-server/internal/model"
	"github.com/edupost/edupost-server/internal/service"
)

// Options tune the guard chain and the cross-cutting middleware.
type Options struct {
	AuthMode        config.AuthMode
	AllowedOrigins  []string
	RateLimitCount  int
	RateLimitWindow time.Duration
}

// Router wires HTTP handlers and middleware for the edupost API.
type Router struct {
	authService    *service.Auth
	postService    *service.Post
	pinger         model.Pinger
	contextManager model.ContextManager
	options        Options
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService *service.Auth,
	postService *service.Post,
	pinger model.Pinger,
	contextManager model.ContextManager,
	options Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		postService:    postService,
		pinger:         pinger,
		contextManager: contextManager,
		options:        options,
		logger:         logger,
	}
}

// Register builds the route tree.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(logging.Handler)
	mux.Use(middleware.Metrics)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.options.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.AuthorHeader},
		MaxAge:         300,
	}))

	healthHandler := handler.NewHealth(r.pinger, r.logger)
	mux.Get("/", healthHandler.Root)
	mux.Get("/health", healthHandler.Health)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	mux.Route("/api/auth", r.registerAuthRoutes)
	mux.Route("/api/posts", r.registerPostRoutes)

	return mux
}

func (r *Router) registerAuthRoutes(mux chi.Router) {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	mux.Use(httprate.LimitByIP(r.options.RateLimitCount, r.options.RateLimitWindow))
	mux.Post("/register", authHandler.Register)
	mux.Post("/login", authHandler.Login)
	mux.With(authenticate.Handler).Post("/logout", authHandler.Logout)
}

func (r *Router) registerPostRoutes(mux chi.Router) {
	postHandler := handler.NewPost(r.postService, r.contextManager, r.logger)

	mux.Get("/", postHandler.List)
	mux.Get("/search", postHandler.Search)
	mux.Get("/{id}", postHandler.Get)

	mux.Group(func(mux chi.Router) {
		mux.Use(r.identify())
		mux.Use(middleware.NewAuthorize(r.contextManager, r.logger).RequireRole(model.RoleTeacher))

		mux.Post("/", postHandler.Create)
		mux.Put("/{id}", postHandler.Update)
		mux.Delete("/{id}", postHandler.Delete)
	})
}

// identify returns the middleware that puts the acting user on the context.
func (r *Router) identify() func(http.Handler) http.Handler {
	if r.options.AuthMode == config.AuthModeLegacyPayload {
		r.logger.Warn("HTTP router: legacy payload authorization enabled, callers are not authenticated")
		return middleware.NewPayloadAuthor(r.authService, r.contextManager, r.logger).Handler
	}
	return middleware.NewAuthenticate(r.authService, r.contextManager, r.logger).Handler
}
