package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/krit/mlbb-counter-website/internal/api/handlers"
	"github.com/krit/mlbb-counter-website/internal/api/middleware"
	"github.com/krit/mlbb-counter-website/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	heroHandler := handlers.NewHeroHandler(services.Catalog, services.Counter)
	itemHandler := handlers.NewItemHandler(services.Catalog)
	ruleHandler := handlers.NewRuleHandler(services.Rule)
	tierHandler := handlers.NewTierHandler(services.Tier)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Public read surface
		r.Route("/heroes", func(r chi.Router) {
			r.Get("/", heroHandler.GetAll)
			r.Get("/tags", heroHandler.GetTags)
			r.Get("/{id}", heroHandler.Get)
			r.Get("/{id}/counters", heroHandler.GetCounters)
		})
		r.Get("/items", itemHandler.GetAll)
		r.Get("/tier-list", tierHandler.GetTierList)

		// Admin surface
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/heroes", func(r chi.Router) {
				r.Get("/", heroHandler.GetCustom)
				r.Post("/", heroHandler.Create)
				r.Put("/{id}", heroHandler.Update)
				r.Delete("/{id}", heroHandler.Delete)
				r.Post("/reset", heroHandler.ResetCustom)

				r.Route("/overrides", func(r chi.Router) {
					r.Get("/", heroHandler.GetOverrides)
					r.Put("/{id}", heroHandler.SetOverride)
					r.Delete("/{id}", heroHandler.RemoveOverride)
					r.Post("/reset", heroHandler.ResetOverrides)
				})
			})

			r.Route("/items", func(r chi.Router) {
				r.Get("/", itemHandler.GetCustom)
				r.Post("/", itemHandler.Create)
				r.Put("/{id}", itemHandler.Update)
				r.Delete("/{id}", itemHandler.Delete)
				r.Post("/reset", itemHandler.ResetCustom)

				r.Route("/overrides", func(r chi.Router) {
					r.Get("/", itemHandler.GetOverrides)
					r.Put("/{id}", itemHandler.SetOverride)
					r.Delete("/{id}", itemHandler.RemoveOverride)
					r.Post("/reset", itemHandler.ResetOverrides)
				})
			})

			r.Route("/rules", func(r chi.Router) {
				r.Get("/", ruleHandler.GetCustom)
				r.Post("/", ruleHandler.Create)
				r.Put("/{index}", ruleHandler.Update)
				r.Delete("/{index}", ruleHandler.Delete)
				r.Post("/reset", ruleHandler.Reset)
				r.Get("/export", ruleHandler.Export)
				r.Post("/import", ruleHandler.Import)
			})

			r.Route("/item-rules", func(r chi.Router) {
				r.Get("/", ruleHandler.GetItemRules)
				r.Post("/", ruleHandler.CreateItemRule)
				r.Put("/{index}", ruleHandler.UpdateItemRule)
				r.Delete("/{index}", ruleHandler.DeleteItemRule)
				r.Post("/reset", ruleHandler.ResetItemRules)
			})

			r.Route("/tier-list", func(r chi.Router) {
				r.Post("/add", tierHandler.AddHero)
				r.Post("/move", tierHandler.MoveHero)
				r.Post("/remove", tierHandler.RemoveHero)
				r.Put("/meta", tierHandler.UpdateMeta)
				r.Get("/export", tierHandler.Export)
				r.Post("/import", tierHandler.Import)
				r.Post("/reset", tierHandler.Reset)
			})
		})
	})

	return r
}
