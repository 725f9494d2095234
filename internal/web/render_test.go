package web

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SneakPeak/internal/catalog"
)

func TestRenderer_Pages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	products := catalog.Seed()

	home, err := r.Render(PageHome, PageData{Title: homeTitle, Products: products})
	require.NoError(t, err)
	assert.Contains(t, string(home), "<title>SneakPeak - Fresh Kicks for Gen-Z</title>")
	for _, p := range products {
		assert.Contains(t, string(home), `href="/product/`+strconv.Itoa(p.ID)+`"`)
	}

	p := products[0]
	detail, err := r.Render(PageProduct, PageData{Title: productTitle(p), Product: &p})
	require.NoError(t, err)
	assert.Contains(t, string(detail), "<title>Air Flux Neon - SneakPeak</title>")
	assert.Contains(t, string(detail), "$149.99")
	assert.Contains(t, string(detail), "Electric Blue")

	checkout, err := r.Render(PageCheckout, PageData{Title: checkoutTitle})
	require.NoError(t, err)
	assert.Contains(t, string(checkout), "<title>Checkout - SneakPeak</title>")
}

func TestRenderer_EscapesContent(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	p := catalog.Product{ID: 42, Name: "<script>alert(1)</script>", Price: decimal.NewFromInt(1)}
	out, err := r.Render(PageProduct, PageData{Title: "x", Product: &p})
	require.NoError(t, err)

	assert.NotContains(t, string(out), "<script>alert(1)</script>")
	assert.Contains(t, string(out), "&lt;script&gt;")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	_, err = r.Render("missing.html", PageData{})
	require.Error(t, err)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$149.99", formatPrice(decimal.RequireFromString("149.99")))
	assert.Equal(t, "$5.00", formatPrice(decimal.NewFromInt(5)))

	assert.Equal(t, "★★★★★", formatStars(4.8))
	assert.Equal(t, "★★★★☆", formatStars(4.4))
	assert.Equal(t, "☆☆☆☆☆", formatStars(-1))
	assert.Equal(t, "★★★★★", formatStars(9))

	assert.Equal(t, "7", formatSize(7))
	assert.Equal(t, "7.5", formatSize(7.5))
}
