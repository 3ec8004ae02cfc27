package domain

import "time"

// Product represents a catalog product with its generated tags
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Stock       int       `json:"stock"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasTag reports whether the product carries the given tag
func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RankedProduct is a product with the score used to order it
type RankedProduct struct {
	*Product
	Score int `json:"score"`
}
