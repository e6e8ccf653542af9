package http

import (
	"net/http"

	_ "github.com/DRSN-tech/watch-store/docs" // Регистрация swagger документации
	"github.com/DRSN-tech/watch-store/internal/usecase"
	"github.com/DRSN-tech/watch-store/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// UseCases: набор usecase, которые обслуживает HTTP API.
type UseCases struct {
	Product   usecase.ProductUC
	Accessory usecase.AccessoryUC
	Catalog   usecase.CatalogUC
	Like      usecase.LikeUC
}

type Router struct {
	router   *chi.Mux
	logger   logger.Logger
	registry *prometheus.Registry
	validate *validator.Validate
}

func NewRouter(router *chi.Mux, logger logger.Logger, registry *prometheus.Registry) *Router {
	return &Router{router: router, logger: logger, registry: registry, validate: validator.New()}
}

func (r *Router) Init(uc UseCases) {
	metrics := NewMetrics(r.registry)

	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(requestLogger(r.logger))
	r.router.Use(middleware.Recoverer)
	r.router.Use(metrics.Middleware)

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.router.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(uc.Product, r.validate, r.logger))
		registerAccessoryRoutes(v1, NewAccessoryHandler(uc.Accessory, r.validate, r.logger))
		registerCatalogRoutes(v1, NewCatalogHandler(uc.Catalog, r.validate, r.logger))
		registerLikeRoutes(v1, NewLikeHandler(uc.Like, r.validate, r.logger))
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.insertProduct)
		pr.Get("/", h.listProducts)
		pr.Get("/brand", h.getProductsByBrand)
		pr.Get("/search", h.searchProducts)
		pr.Get("/gender", h.filterProductsByGender)
	})
}

func registerAccessoryRoutes(router chi.Router, h *AccessoryHandler) {
	router.Route("/accessories", func(ar chi.Router) {
		ar.Post("/", h.insertAccessory)
		ar.Get("/", h.listAccessories)
		ar.Get("/search", h.searchAccessories)
		ar.Get("/color", h.filterAccessoriesByColor)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/brands", func(br chi.Router) {
		br.Post("/", h.createBrand)
		br.Get("/", h.listBrands)
	})
	router.Route("/categories", func(cr chi.Router) {
		cr.Post("/", h.createCategory)
		cr.Get("/", h.listCategories)
	})
}

func registerLikeRoutes(router chi.Router, h *LikeHandler) {
	router.Post("/likes", h.insertLike)
}
