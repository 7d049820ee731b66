package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/jaessolutions/docdesk/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Post("/quotes/open", h.OpenQuote)
			r.Put("/quotes", h.SaveQuote)
			r.Get("/quotes/recent", h.RecentQuotes)
			r.Get("/quotes/{number}", h.GetQuote)
			r.Get("/quotes/{number}/download", h.DownloadQuotePDF)
			r.Get("/quotes/{number}/url", h.QuotePDFURL)

			r.Post("/invoices/open", h.OpenInvoice)
			r.Put("/invoices", h.SaveInvoice)
			r.Get("/invoices/recent", h.RecentInvoices)
			r.Get("/invoices/parties", h.PartyHistory)
			r.Get("/invoices/{number}", h.GetInvoice)
			r.Get("/invoices/{number}/download", h.DownloadInvoicePDF)
			r.Get("/invoices/{number}/url", h.InvoicePDFURL)
		})
	})

	return router
}
