package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Product is one row of the catalog feed, already coerced to typed fields.
// Price and Stock default to 0 when the source cell is missing or
// non-numeric; the feed has no schema enforcement so parsing stays lenient.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image1      string  `json:"image1,omitempty"`
	Image2      string  `json:"image2,omitempty"`
	Image3      string  `json:"image3,omitempty"`
	Colors      string  `json:"colors"` // comma-separated, e.g. "Red, Blue"
	Sizes       string  `json:"sizes"`  // comma-separated, e.g. "S, M, L"
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	DateAdded   string  `json:"date_added,omitempty"`
}

// ProductID derives a stable identifier from the product's content so that
// cart lines keep resolving after a catalog reload. The feed itself carries
// no key column.
func ProductID(name, category string) string {
	sum := sha256.Sum256([]byte(name + "\x00" + category))
	return hex.EncodeToString(sum[:8])
}

// Images returns the non-empty, trimmed image URLs in slot order.
func (p *Product) Images() []string {
	imgs := make([]string, 0, 3)
	for _, raw := range []string{p.Image1, p.Image2, p.Image3} {
		if url := strings.TrimSpace(raw); url != "" {
			imgs = append(imgs, url)
		}
	}
	return imgs
}

// ColorOptions splits the comma-separated color list into trimmed values.
func (p *Product) ColorOptions() []string {
	return splitOptions(p.Colors)
}

// SizeOptions splits the comma-separated size list into trimmed values.
func (p *Product) SizeOptions() []string {
	return splitOptions(p.Sizes)
}

func splitOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
