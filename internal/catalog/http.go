package catalog

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"SneakPeak/pkg/kit"
)

const (
	MsgNotFound       = "Product not found"
	msgInvalidID      = "invalid product id"
	msgInvalidTrend   = "invalid trending value"
	msgServerError    = "server error"
	queryCategory     = "category"
	queryTrending     = "trending"
	statusInvalidArgs = http.StatusUnprocessableEntity
)

var errInvalidBool = errors.New("invalid boolean token")

// Server exposes the catalog as a JSON API.
type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/products", s.list)
	r.Get("/products/{id}", s.get)
	r.Get("/categories", s.categories)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, err := FilterFromQuery(q)
	if err != nil {
		kit.WriteError(w, statusInvalidArgs, msgInvalidTrend, map[string]any{queryTrending: q.Get(queryTrending)})
		return
	}

	products, err := s.Store.List(r.Context(), f)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list products failed", zap.Error(err))
		}
		kit.WriteError(w, http.StatusInternalServerError, msgServerError, nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := ParseID(raw)
	if err != nil {
		WriteIDError(w, raw, err)
		return
	}

	p, err := s.Store.Get(r.Context(), id)
	if err != nil {
		WriteLookupError(w, s.Log, id, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.Store.Categories(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list categories failed", zap.Error(err))
		}
		kit.WriteError(w, http.StatusInternalServerError, msgServerError, nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, cats)
}

// FilterFromQuery reads the category and trending query parameters. An
// absent or empty category means no category filter; trending, when
// present at all, must be a recognised boolean token.
func FilterFromQuery(q url.Values) (Filter, error) {
	f := Filter{Category: q.Get(queryCategory)}

	if !q.Has(queryTrending) {
		return f, nil
	}

	v, err := parseBool(q.Get(queryTrending))
	if err != nil {
		return Filter{}, err
	}
	f.Trending = &v
	return f, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes", "y", "on":
		return true, nil
	case "false", "f", "0", "no", "n", "off":
		return false, nil
	}
	return false, errors.Wrapf(errInvalidBool, "%q", s)
}

// ParseID parses a product id path segment. A well-formed integer that
// does not fit in an int cannot name a product, so it reports ErrNotFound.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "parse product id")
	}
	return id, nil
}

// WriteIDError answers a ParseID failure: 404 for out-of-range ids,
// 422 for anything that is not an integer.
func WriteIDError(w http.ResponseWriter, raw string, err error) {
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, http.StatusNotFound, MsgNotFound, nil)
		return
	}
	kit.WriteError(w, statusInvalidArgs, msgInvalidID, map[string]any{"id": raw})
}

// WriteLookupError maps a Store.Get failure onto the response contract:
// ErrNotFound becomes 404 {"error":"Product not found"}, anything else 500.
func WriteLookupError(w http.ResponseWriter, log *zap.Logger, id int, err error) {
	if errors.Is(err, ErrNotFound) {
		kit.WriteError(w, http.StatusNotFound, MsgNotFound, nil)
		return
	}
	if log != nil {
		log.Error("get product failed", zap.Error(err), zap.Int("id", id))
	}
	kit.WriteError(w, http.StatusInternalServerError, msgServerError, nil)
}
