package catalog

import (
	"encoding/json"
	"slices"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Colors      []string        `json:"colors"`
	Sizes       []float64       `json:"sizes"`
	Description string          `json:"description"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	Category    string          `json:"category"`
	Trending    bool            `json:"trending"`
}

// productJSON fixes the wire shape of Product. Price travels as a bare
// number, which decimal.Decimal's own encoder would quote.
type productJSON struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	Price       json.Number `json:"price"`
	Image       string      `json:"image"`
	Colors      []string    `json:"colors"`
	Sizes       []float64   `json:"sizes"`
	Description string      `json:"description"`
	Rating      float64     `json:"rating"`
	Reviews     int         `json:"reviews"`
	Category    string      `json:"category"`
	Trending    bool        `json:"trending"`
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       json.Number(p.Price.String()),
		Image:       p.Image,
		Colors:      p.Colors,
		Sizes:       p.Sizes,
		Description: p.Description,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Category:    p.Category,
		Trending:    p.Trending,
	})
}

// clone returns a copy that shares no slices with p.
func (p Product) clone() Product {
	p.Colors = slices.Clone(p.Colors)
	p.Sizes = slices.Clone(p.Sizes)
	return p
}

// Seed returns a fresh copy of the built-in sneaker table.
func Seed() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Air Flux Neon",
			Brand:       "StreetVibe",
			Price:       decimal.RequireFromString("149.99"),
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
			Colors:      []string{"Neon Green", "Electric Blue", "Hot Pink"},
			Sizes:       []float64{7, 8, 9, 10, 11, 12},
			Description: "Turn heads with these electric colorways. Perfect for late-night city adventures.",
			Rating:      4.8,
			Reviews:     234,
			Category:    "Lifestyle",
			Trending:    true,
		},
		{
			ID:          2,
			Name:        "Cyber Runner X",
			Brand:       "FutureFeet",
			Price:       decimal.RequireFromString("189.99"),
			Image:       "https://images.unsplash.com/photo-1605348532760-6753d2c43329?w=500",
			Colors:      []string{"Chrome Silver", "Matte Black", "Holographic"},
			Sizes:       []float64{7, 8, 9, 10, 11, 12},
			Description: "Cyberpunk meets comfort. These kicks are straight from 2077.",
			Rating:      4.9,
			Reviews:     567,
			Category:    "Performance",
			Trending:    true,
		},
		{
			ID:          3,
			Name:        "Retro Wave 95",
			Brand:       "VaporWave",
			Price:       decimal.RequireFromString("129.99"),
			Image:       "https://images.unsplash.com/photo-1600185365926-3a2ce3cdb9eb?w=500",
			Colors:      []string{"Purple Haze", "Sunset Orange", "Teal Dream"},
			Sizes:       []float64{6, 7, 8, 9, 10, 11},
			Description: "90s nostalgia with modern comfort. Aesthetic overload guaranteed.",
			Rating:      4.7,
			Reviews:     189,
			Category:    "Retro",
			Trending:    false,
		},
		{
			ID:          4,
			Name:        "Cloud Walker",
			Brand:       "SkyStep",
			Price:       decimal.RequireFromString("159.99"),
			Image:       "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500",
			Colors:      []string{"Pure White", "Sky Blue", "Lavender"},
			Sizes:       []float64{7, 8, 9, 10, 11, 12},
			Description: "Walk on clouds. Literally the softest sneakers you'll ever wear.",
			Rating:      4.9,
			Reviews:     423,
			Category:    "Comfort",
			Trending:    true,
		},
		{
			ID:          5,
			Name:        "Urban Jungle Pro",
			Brand:       "StreetVibe",
			Price:       decimal.RequireFromString("169.99"),
			Image:       "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=500",
			Colors:      []string{"Camo Green", "Tiger Orange", "Snake Print"},
			Sizes:       []float64{7, 8, 9, 10, 11, 12, 13},
			Description: "Survive the concrete jungle in style. Built tough, looks tougher.",
			Rating:      4.6,
			Reviews:     312,
			Category:    "Lifestyle",
			Trending:    false,
		},
		{
			ID:          6,
			Name:        "Glow Up Premium",
			Brand:       "LuxeKicks",
			Price:       decimal.RequireFromString("199.99"),
			Image:       "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=500",
			Colors:      []string{"Rose Gold", "Pearl White", "Champagne"},
			Sizes:       []float64{6, 7, 8, 9, 10, 11},
			Description: "For when you need to flex. Premium materials, premium vibes only.",
			Rating:      4.8,
			Reviews:     678,
			Category:    "Premium",
			Trending:    true,
		},
		{
			ID:          7,
			Name:        "Speed Demon",
			Brand:       "FutureFeet",
			Price:       decimal.RequireFromString("174.99"),
			Image:       "https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?w=500",
			Colors:      []string{"Racing Red", "Carbon Black", "Velocity Yellow"},
			Sizes:       []float64{7, 8, 9, 10, 11, 12},
			Description: "Built for speed. Feel the rush every time you lace up.",
			Rating:      4.7,
			Reviews:     445,
			Category:    "Performance",
			Trending:    false,
		},
		{
			ID:          8,
			Name:        "Pastel Dreams",
			Brand:       "SoftStep",
			Price:       decimal.RequireFromString("139.99"),
			Image:       "https://images.unsplash.com/photo-1600269452121-4f2416e55c28?w=500",
			Colors:      []string{"Baby Pink", "Mint Green", "Soft Yellow"},
			Sizes:       []float64{6, 7, 8, 9, 10, 11},
			Description: "Soft aesthetics, soft comfort. Perfect for your feed and your feet.",
			Rating:      4.8,
			Reviews:     523,
			Category:    "Lifestyle",
			Trending:    true,
		},
	}
}
