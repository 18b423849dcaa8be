package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"quickbite/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type collegeSeed struct {
	Name        string
	Location    string
	Description string
	Icon        string
	Cafeterias  []string
}

type menuItemSeed struct {
	Name        string
	Description string
	PriceCents  int64
	Category    domain.Category
	Veg         bool
	Cafeteria   string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	colleges := []collegeSeed{
		{
			Name:        "ABES Engineering College",
			Location:    "Ghaziabad",
			Description: "Premier engineering college with multiple dining options",
			Icon:        "fas fa-graduation-cap",
			Cafeterias:  []string{"Main Cafeteria", "Food Court", "QuickBite Corner"},
		},
		{
			Name:        "IMS Ghaziabad",
			Location:    "Ghaziabad",
			Description: "Management and technology institute",
			Icon:        "fas fa-university",
			Cafeterias:  []string{"Central Cafeteria", "North Block Cafe"},
		},
		{
			Name:        "KIET Group of Institutions",
			Location:    "Ghaziabad",
			Description: "Multi-disciplinary educational group",
			Icon:        "fas fa-school",
			Cafeterias:  []string{"Main Cafeteria", "Engineering Block Cafe", "MBA Cafeteria"},
		},
	}

	items := []menuItemSeed{
		{Name: "Masala Dosa", Description: "Crispy dosa with potato filling", PriceCents: 6000, Category: domain.CategoryBreakfast, Veg: true, Cafeteria: "Main Cafeteria"},
		{Name: "Chole Bhature", Description: "Spicy chickpeas with fried bread", PriceCents: 8000, Category: domain.CategoryLunch, Veg: true, Cafeteria: "Main Cafeteria"},
		{Name: "Veg Thali", Description: "Complete meal with rice, dal, vegetables", PriceCents: 12000, Category: domain.CategoryLunch, Veg: true, Cafeteria: "Main Cafeteria"},
		{Name: "Paneer Butter Masala", Description: "Cottage cheese in rich tomato gravy", PriceCents: 18000, Category: domain.CategoryLunch, Veg: true, Cafeteria: "Main Cafeteria"},
		{Name: "Veg Burger", Description: "Fresh vegetable burger with cheese", PriceCents: 5000, Category: domain.CategorySnacks, Veg: true, Cafeteria: "Food Court"},
		{Name: "Masala Chai", Description: "Hot spiced tea", PriceCents: 1500, Category: domain.CategoryBeverages, Veg: true, Cafeteria: "Main Cafeteria"},
		{Name: "Chicken Biryani", Description: "Fragrant rice with spiced chicken", PriceCents: 15000, Category: domain.CategoryDinner, Veg: false, Cafeteria: "Food Court"},
		{Name: "Gulab Jamun", Description: "Soft milk dumplings in syrup", PriceCents: 4000, Category: domain.CategoryDesserts, Veg: true, Cafeteria: "Main Cafeteria"},
	}

	for _, c := range colleges {
		if err := upsertCollege(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert college %s: %w", c.Name, err)
		}
	}
	for _, item := range items {
		if err := upsertMenuItem(ctx, pool, item); err != nil {
			return fmt.Errorf("upsert menu item %s: %w", item.Name, err)
		}
	}

	return nil
}

func upsertCollege(ctx context.Context, pool *pgxpool.Pool, c collegeSeed) error {
	cafJSON, err := json.Marshal(c.Cafeterias)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO colleges (name, location, description, icon, cafeterias)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO UPDATE
SET location = EXCLUDED.location,
    description = EXCLUDED.description,
    icon = EXCLUDED.icon,
    cafeterias = EXCLUDED.cafeterias
`
	_, err = pool.Exec(ctx, q, c.Name, c.Location, c.Description, c.Icon, cafJSON)
	return err
}

func upsertMenuItem(ctx context.Context, pool *pgxpool.Pool, item menuItemSeed) error {
	// menu_items has no natural key, so seeding checks by name + cafeteria.
	const q = `
INSERT INTO menu_items (name, description, price_cents, category, veg, cafeteria, available)
SELECT $1, $2, $3, $4, $5, $6, true
WHERE NOT EXISTS (
    SELECT 1 FROM menu_items WHERE name = $1 AND cafeteria = $6
)
`
	_, err := pool.Exec(ctx, q, item.Name, item.Description, item.PriceCents, string(item.Category), item.Veg, item.Cafeteria)
	return err
}
