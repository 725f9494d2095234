package web

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"SneakPeak/internal/catalog"
)

const (
	PageHome     = "index.html"
	PageProduct  = "product.html"
	PageCheckout = "checkout.html"

	layoutFile = "layout.html"
	layoutName = "layout"
	maxStars   = 5
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData is everything a page template can see.
type PageData struct {
	Title    string
	Products []catalog.Product
	Product  *catalog.Product
}

// Renderer holds the parsed page set. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range []string{PageHome, PageProduct, PageCheckout} {
		t, err := template.New(page).
			Funcs(funcs).
			ParseFS(templatesFS, "templates/"+layoutFile, "templates/"+page)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", page)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render executes page into memory, so a failing template never leaves a
// half-written response behind.
func (r *Renderer) Render(page string, data PageData) ([]byte, error) {
	t, ok := r.pages[page]
	if !ok {
		return nil, errors.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return nil, errors.Wrapf(err, "render %s", page)
	}
	return buf.Bytes(), nil
}

var funcs = template.FuncMap{
	"price": formatPrice,
	"stars": formatStars,
	"size":  formatSize,
}

func formatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func formatStars(rating float64) string {
	n := int(math.Round(rating))
	n = max(0, min(maxStars, n))
	return strings.Repeat("★", n) + strings.Repeat("☆", maxStars-n)
}

func formatSize(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
