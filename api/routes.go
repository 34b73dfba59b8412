package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPublicRoutes sets up the routes the public site calls
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", handlers.healthHandler.health())
		r.Get("/settings", handlers.settingsHandler.getPublicSettings())
		r.Get("/projects", handlers.projectHandler.getPublishedProjects())
		r.Get("/services", handlers.serviceHandler.getAllServices())
		r.Get("/services/{serviceID}", handlers.serviceHandler.getService())
		r.Post("/cotizaciones", handlers.quoteHandler.submitQuote())

		r.Post("/admin/login", handlers.authHandler.login())
		r.Post("/admin/logout", handlers.authHandler.logout())
	})
}

// setupAdminRoutes sets up the routes that need the admin session cookie
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		// Settings
		r.Get("/admin/settings", handlers.settingsHandler.getAdminSettings())
		r.Put("/admin/settings", handlers.settingsHandler.updateSettings())
		r.Put("/admin/settings/social/{key}", handlers.settingsHandler.putSocialLink())
		r.Delete("/admin/settings/social/{key}", handlers.settingsHandler.deleteSocialLink())

		// Projects
		r.Get("/admin/projects", handlers.projectHandler.getAllProjects())
		r.Post("/admin/projects", handlers.projectHandler.createProject())
		r.Put("/admin/projects", handlers.projectHandler.updateProject())
		r.Delete("/admin/projects", handlers.projectHandler.deleteProject())

		// Services
		r.Get("/admin/services", handlers.serviceHandler.getAllServices())
		r.Post("/admin/services", handlers.serviceHandler.createService())
		r.Put("/admin/services", handlers.serviceHandler.updateService())
		r.Delete("/admin/services", handlers.serviceHandler.deleteService())

		// Quote requests
		r.Get("/cotizaciones", handlers.quoteHandler.getAllQuotes())
		r.Patch("/cotizaciones/{quoteID}", handlers.quoteHandler.updateQuoteStatus())
		r.Delete("/cotizaciones/{quoteID}", handlers.quoteHandler.deleteQuote())
	})
}
