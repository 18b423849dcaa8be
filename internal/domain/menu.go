package domain

import "time"

// Category buckets menu items for filtering.
type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
	CategorySnacks    Category = "Snacks"
	CategoryBeverages Category = "Beverages"
	CategoryDesserts  Category = "Desserts"
)

// ValidCategory reports whether s is one of the known categories.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnacks, CategoryBeverages, CategoryDesserts:
		return true
	}
	return false
}

// MenuItem is a dish or drink sold by exactly one cafeteria. Price and
// availability may change at any time; orders snapshot the price instead of
// referencing it live.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Category    Category  `json:"category"`
	Veg         bool      `json:"veg"`
	Cafeteria   string    `json:"cafeteria"`
	Image       string    `json:"image,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
}
