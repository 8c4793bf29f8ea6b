package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductCarousel flags where a product shows up on the home page
type ProductCarousel struct {
	Home     bool `bson:"home" json:"home"`
	Promo    bool `bson:"promo" json:"promo"`
	Destaque bool `bson:"destaque" json:"destaque"`
	Order    int  `bson:"order" json:"order"`
}

// Product represents a catalog product. Ids are uuid strings rather
// than Mongo ObjectIDs so the storefront can treat them as opaque.
type Product struct {
	ID             string          `bson:"id" json:"id"`
	Name           string          `bson:"name" json:"name"`
	Category       string          `bson:"category" json:"category"`
	Price          float64         `bson:"price" json:"price"`
	PromoActive    bool            `bson:"promo_active" json:"promo_active"`
	PromoPrice     *float64        `bson:"promo_price,omitempty" json:"promo_price,omitempty"`
	Images         []string        `bson:"images" json:"images"`
	Specifications map[string]any  `bson:"specifications" json:"specifications"`
	Carousel       ProductCarousel `bson:"carousel" json:"carousel"`
	Active         bool            `bson:"active" json:"active"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
}

// EnsureDefaults fills the fields the admin form may omit.
func (p *Product) EnsureDefaults() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Specifications == nil {
		p.Specifications = map[string]any{}
	}
}
