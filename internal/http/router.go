package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/moneymap/internal/http/category"
	"github.com/MrJamesThe3rd/moneymap/internal/http/importcsv"
	"github.com/MrJamesThe3rd/moneymap/internal/http/labeling"
	"github.com/MrJamesThe3rd/moneymap/internal/http/ledger"
	"github.com/MrJamesThe3rd/moneymap/internal/http/readcache"
	"github.com/MrJamesThe3rd/moneymap/internal/http/statistics"
)

func New(
	importV1 *importcsv.Handler,
	labelsV1 *labeling.Handler,
	categoriesV1 *category.Handler,
	ledgerV1 *ledger.Handler,
	statisticsV1 *statistics.Handler,
	cache *readcache.Cache,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(cache.Invalidate)

		r.Route("/import", importV1.Routes)

		r.Route("/labels", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			labelsV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(cache.Cached)
			categoriesV1.Routes(r)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Use(cache.Cached)
			ledgerV1.Routes(r)
		})

		r.Route("/statistics", func(r chi.Router) {
			r.Use(cache.Cached)
			statisticsV1.Routes(r)
		})
	})

	return router
}
