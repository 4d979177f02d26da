package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, h.withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	// probes are served uncompressed
	router.Get("/healthz", h.healthz)
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/users", h.listUsers)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Put("/user/{id}/password", h.changePassword)
		r.Delete("/user/{id}", h.deleteUser)
		r.Post("/forgot-password", h.forgotPassword)
		r.Post("/reset-password", h.resetPassword)

		r.Get("/recipes", h.listRecipes)
		r.Get("/profile/{userId}", h.getProfile)

		r.Post("/progress/{userId}/{recipeId}/start", h.startProgress)
		r.Put("/progress/{userId}/{recipeId}/ingredient", h.updateIngredient)
		r.Get("/progress/{userId}/{recipeId}", h.getProgress)
		r.Put("/progress/{userId}/{recipeId}/complete", h.completeProgress)
	})

	return router
}
