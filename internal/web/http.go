package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"SneakPeak/internal/catalog"
	"SneakPeak/pkg/kit"
)

const (
	siteName      = "SneakPeak"
	homeTitle     = siteName + " - Fresh Kicks for Gen-Z"
	checkoutTitle = "Checkout - " + siteName
)

func productTitle(p catalog.Product) string {
	return p.Name + " - " + siteName
}

// Server renders the storefront pages.
type Server struct {
	Store    catalog.Store
	Renderer *Renderer
	Log      *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.home)
	r.Get("/product/{id}", s.product)
	r.Get("/checkout", s.checkout)

	return r
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context(), catalog.Filter{})
	if err != nil {
		s.fail(w, "list products failed", err)
		return
	}
	s.render(w, PageHome, PageData{Title: homeTitle, Products: products})
}

func (s *Server) product(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := catalog.ParseID(raw)
	if err != nil {
		catalog.WriteIDError(w, raw, err)
		return
	}

	p, err := s.Store.Get(r.Context(), id)
	if err != nil {
		catalog.WriteLookupError(w, s.Log, id, err)
		return
	}
	s.render(w, PageProduct, PageData{Title: productTitle(p), Product: &p})
}

func (s *Server) checkout(w http.ResponseWriter, _ *http.Request) {
	s.render(w, PageCheckout, PageData{Title: checkoutTitle})
}

func (s *Server) render(w http.ResponseWriter, page string, data PageData) {
	body, err := s.Renderer.Render(page, data)
	if err != nil {
		s.fail(w, "render page failed", err)
		return
	}
	kit.WriteHTML(w, http.StatusOK, body)
}

func (s *Server) fail(w http.ResponseWriter, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, http.StatusInternalServerError, "server error", nil)
}
