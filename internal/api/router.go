package api

import (
	"net/http"
	"time"
	"wings_inventory/internal/api/handler"
	"wings_inventory/internal/api/middleware"
	"wings_inventory/internal/app/service"
	"wings_inventory/internal/platform/database"
	"wings_inventory/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

type RouterDeps struct {
	AuthService    *service.AuthService
	ProductService *service.ProductService
	Log            logrus.FieldLogger
	Metrics        *metrics.HTTPMetrics
	DB             database.Pinger // nil for the in-memory backend

	AllowedOrigins    []string
	AdminAuthRequired bool
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Log))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	healthHandler := handler.NewHealthHandler(deps.DB, deps.Log)
	r.Get("/health", healthHandler.Live)
	r.Get("/ready", healthHandler.Ready)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	// Self-service account routes stay public.
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Log)
	authHandler.RegisterRoutes(r)

	r.Group(func(admin chi.Router) {
		if deps.AdminAuthRequired {
			admin.Use(middleware.BasicAuthenticator(deps.AuthService, deps.Log))
		}

		productHandler := handler.NewProductHandler(deps.ProductService, deps.Log)
		admin.Route("/products", productHandler.RegisterRoutes)

		userHandler := handler.NewUserHandler(deps.AuthService, deps.Log)
		userHandler.RegisterRoutes(admin)
	})

	return r
}
