package pages

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"github.com/8Gelos8/DreamPrintUA/internal/domain/admin"
	"github.com/8Gelos8/DreamPrintUA/internal/domain/content"
	"github.com/8Gelos8/DreamPrintUA/internal/domain/gallery"
)

// Handler рендерить сторінки сайту. Маршрути повторюють SPA один в
// один: home, products, prices, about, admin, все інше — на головну.
type Handler struct {
	tmpl    *template.Template
	content content.Servicer
	gallery gallery.Servicer
	admin   admin.Servicer
	log     *slog.Logger
}

func NewHandler(dir string, contentSvc content.Servicer, gallerySvc gallery.Servicer, adminSvc admin.Servicer, log *slog.Logger) (*Handler, error) {
	tmpl, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}

	return &Handler{
		tmpl:    tmpl,
		content: contentSvc,
		gallery: gallerySvc,
		admin:   adminSvc,
		log:     log.With("component", "pages"),
	}, nil
}

func (h *Handler) Register(mux *chi.Mux) {
	mux.Get("/", h.home)
	mux.Get("/products", h.products)
	mux.Get("/prices", h.prices)
	mux.Get("/about", h.about)
	mux.Get("/admin", h.adminPage)
	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	rec := h.content.Load()
	h.render(w, "home.html", map[string]any{
		"Title":       rec.HomeTitle,
		"Description": rec.HomeDescription,
		"Gallery":     h.gallery.Items(r.Context()),
	})
}

func (h *Handler) products(w http.ResponseWriter, _ *http.Request) {
	rec := h.content.Load()
	products := rec.Products
	if len(products) == 0 {
		products = content.ShowcaseProducts()
	}
	h.render(w, "products.html", map[string]any{
		"Title":    rec.HomeTitle,
		"Products": products,
	})
}

func (h *Handler) prices(w http.ResponseWriter, _ *http.Request) {
	rec := h.content.Load()
	prices := rec.Prices
	if len(prices) == 0 {
		prices = content.ShowcasePrices()
	}
	h.render(w, "prices.html", map[string]any{
		"Title":  rec.HomeTitle,
		"Prices": prices,
	})
}

func (h *Handler) about(w http.ResponseWriter, _ *http.Request) {
	rec := h.content.Load()
	h.render(w, "about.html", map[string]any{
		"Title":     rec.HomeTitle,
		"AboutText": rec.AboutText,
	})
}

func (h *Handler) adminPage(w http.ResponseWriter, _ *http.Request) {
	rec := h.content.Load()
	h.render(w, "admin.html", map[string]any{
		"Title":   rec.HomeTitle,
		"IsAdmin": h.admin.IsAuthenticated(),
	})
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error("render page failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
