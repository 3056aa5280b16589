package http

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterDeps collects every service the route tree needs.
type RouterDeps struct {
	Catalog    CatalogReader
	Holds      HoldPlacer
	Inquiries  InquirySubmitter
	SpecSheets SpecSheetGenerator

	HoldReview    HoldReviewer
	InquiryReview InquiryReviewer
	Products      ProductEditor
	Taxonomy      TaxonomyEditor
	Stats         StatsReader

	Auth interface {
		TokenIssuer
		TokenVerifier
	}

	CORSOrigins []string
	Logger      *log.Logger
}

// NewRouter assembles the storefront and back-office route tree.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(deps.Logger))
	r.Use(CORS(deps.CORSOrigins))
	r.NotFound(NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(MethodNotAllowedHandler().ServeHTTP)

	r.Get("/health", HealthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", HandleListProducts(deps.Catalog))
		r.Get("/products/featured", HandleFeaturedProducts(deps.Catalog))
		r.Get("/products/{productID}", HandleGetProduct(deps.Catalog))
		r.Get("/products/{productID}/similar", HandleSimilarProducts(deps.Catalog))
		r.Get("/filters", HandleFilterOptions(deps.Catalog))
		r.Get("/collections", HandleListCollections(deps.Catalog))
		r.Get("/collections/{collectionSlug}", HandleGetCollection(deps.Catalog))

		r.Post("/products/{productID}/holds", HandlePlaceHold(deps.Holds))
		r.Post("/products/{productID}/inquiries", HandleSubmitInquiry(deps.Inquiries))
		r.Post("/products/{productID}/spec-sheet", HandleSpecSheet(deps.SpecSheets))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", HandleAdminLogin(deps.Auth))

			r.Group(func(r chi.Router) {
				r.Use(RequireAdmin(deps.Auth))

				r.Get("/stats", HandleAdminStats(deps.Stats))

				r.Get("/holds", HandleListHolds(deps.HoldReview))
				r.Post("/holds/{holdID}/approve", HandleApproveHold(deps.HoldReview))
				r.Post("/holds/{holdID}/decline", HandleDeclineHold(deps.HoldReview))
				r.Post("/holds/{holdID}/release", HandleReleaseHold(deps.HoldReview))

				r.Get("/inquiries", HandleListInquiries(deps.InquiryReview))
				r.Post("/inquiries/{inquiryID}/approve", HandleApproveInquiry(deps.InquiryReview))
				r.Post("/inquiries/{inquiryID}/decline", HandleDeclineInquiry(deps.InquiryReview))
				r.Post("/inquiries/{inquiryID}/read", HandleMarkInquiryRead(deps.InquiryReview))

				r.Get("/products", HandleAdminListProducts(deps.Products))
				r.Post("/products", HandleCreateProduct(deps.Products))
				r.Get("/products/{productID}", HandleAdminGetProduct(deps.Products))
				r.Put("/products/{productID}", HandleUpdateProduct(deps.Products))
				r.Delete("/products/{productID}", HandleDeleteProduct(deps.Products))

				r.Get("/taxonomy/{kind}", HandleListTaxonomy(deps.Taxonomy))
				r.Post("/taxonomy/{kind}", HandleCreateTaxonomy(deps.Taxonomy))
				r.Put("/taxonomy/{kind}/{entryID}", HandleUpdateTaxonomy(deps.Taxonomy))
				r.Delete("/taxonomy/{kind}/{entryID}", HandleDeleteTaxonomy(deps.Taxonomy))
			})
		})
	})

	return r
}
