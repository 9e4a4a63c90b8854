package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryAll is the sentinel category that matches every property.
const CategoryAll = "all"

// Categories is the fixed set of listing categories offered by the site.
var Categories = []string{
	"Rent",
	"Sale",
	"Commercial",
	"Land",
	"Apartment",
	"House",
	"Villa",
	"Condo",
	"Office Space",
	"Warehouse",
	"Farm",
	"Other",
}

// NormalizeCategory maps a user-supplied category onto the known set,
// case-insensitively. Anything unrecognized falls back to CategoryAll.
func NormalizeCategory(category string) string {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" || strings.EqualFold(trimmed, CategoryAll) {
		return CategoryAll
	}
	for _, c := range Categories {
		if strings.EqualFold(c, trimmed) {
			return c
		}
	}
	return CategoryAll
}

type Property struct {
	ID          string              `bson:"_id" json:"id"`
	Name        string              `bson:"name" json:"name"`
	Category    string              `bson:"category" json:"category"`
	Description string              `bson:"description" json:"description"`
	Price       float64             `bson:"price" json:"price"`
	Location    string              `bson:"location" json:"location"`
	Image       string              `bson:"image" json:"image"`
	Rating      float64             `bson:"rating" json:"rating"`
	SellerName  string              `bson:"sellerName" json:"sellerName"`
	SellerEmail string              `bson:"sellerEmail" json:"sellerEmail"`
	CreatedBy   *primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// PropertyInput is the write payload for properties. The legacy HomeNest
// client sent PascalCase/underscored field names (Property_Name, Category,
// ...); newer clients send camelCase. Both are accepted here and nowhere
// else: internal code only ever sees Property.
type PropertyInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	Image       string  `json:"image" validate:"omitempty,url"`
	Rating      float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	SellerName  string  `json:"sellerName"`
	SellerEmail string  `json:"sellerEmail" validate:"omitempty,email"`

	LegacyName        string  `json:"Property_Name"`
	LegacyCategory    string  `json:"Category"`
	LegacyDescription string  `json:"Description"`
	LegacyPrice       float64 `json:"Price"`
	LegacyLocation    string  `json:"Location"`
	LegacyImage       string  `json:"Image"`
	LegacyRating      float64 `json:"Rating"`
	LegacySellerName  string  `json:"userName"`
	LegacySellerEmail string  `json:"userEmail"`
}

// Normalize folds the legacy aliases into the canonical shape. Canonical
// fields win when both are present.
func (in *PropertyInput) Normalize() Property {
	p := Property{
		Name:        coalesce(in.Name, in.LegacyName),
		Category:    coalesce(in.Category, in.LegacyCategory),
		Description: coalesce(in.Description, in.LegacyDescription),
		Price:       in.Price,
		Location:    coalesce(in.Location, in.LegacyLocation),
		Image:       coalesce(in.Image, in.LegacyImage),
		Rating:      in.Rating,
		SellerName:  coalesce(in.SellerName, in.LegacySellerName),
		SellerEmail: coalesce(in.SellerEmail, in.LegacySellerEmail),
	}
	if p.Price == 0 {
		p.Price = in.LegacyPrice
	}
	if p.Rating == 0 {
		p.Rating = in.LegacyRating
	}
	if p.Price < 0 {
		p.Price = 0
	}
	return p
}

func coalesce(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}
