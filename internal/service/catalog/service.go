package catalog

import (
	"context"
	"strings"

	"quickbite/internal/domain"
	collegerepo "quickbite/internal/repository/college"
	menurepo "quickbite/internal/repository/menu"
)

// Service fronts the college and menu collections. Reads are pass-through;
// admin writes validate input before any store call.
type Service struct {
	colleges collegerepo.Repository
	menu     menurepo.Repository
}

func New(colleges collegerepo.Repository, menu menurepo.Repository) *Service {
	return &Service{colleges: colleges, menu: menu}
}

// CollegeInput mirrors incoming college payloads.
type CollegeInput struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Image       string   `json:"image"`
	Cafeterias  []string `json:"cafeterias"`
}

// MenuItemInput mirrors incoming menu item payloads.
type MenuItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Category    string `json:"category"`
	Veg         bool   `json:"veg"`
	Cafeteria   string `json:"cafeteria"`
	Image       string `json:"image"`
	Available   *bool  `json:"available"`
}

func (s *Service) ListColleges(ctx context.Context) ([]domain.College, error) {
	return s.colleges.List(ctx)
}

func (s *Service) GetCollege(ctx context.Context, id string) (*domain.College, error) {
	return s.colleges.GetByID(ctx, id)
}

func (s *Service) CreateCollege(ctx context.Context, in CollegeInput) (*domain.College, error) {
	c, err := collegeFromInput(in)
	if err != nil {
		return nil, err
	}
	return s.colleges.Create(ctx, *c)
}

func (s *Service) UpdateCollege(ctx context.Context, id string, in CollegeInput) (*domain.College, error) {
	c, err := collegeFromInput(in)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return s.colleges.Update(ctx, *c)
}

func (s *Service) ListMenu(ctx context.Context, f menurepo.Filter) ([]domain.MenuItem, error) {
	if f.Category != "" && !domain.ValidCategory(f.Category) {
		return nil, domain.Validation("category", "unknown category")
	}
	return s.menu.List(ctx, f)
}

func (s *Service) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.menu.GetByID(ctx, id)
}

func (s *Service) CreateMenuItem(ctx context.Context, in MenuItemInput) (*domain.MenuItem, error) {
	item, err := menuItemFromInput(in)
	if err != nil {
		return nil, err
	}
	return s.menu.Create(ctx, *item)
}

func (s *Service) UpdateMenuItem(ctx context.Context, id string, in MenuItemInput) (*domain.MenuItem, error) {
	item, err := menuItemFromInput(in)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return s.menu.Update(ctx, *item)
}

func collegeFromInput(in CollegeInput) (*domain.College, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name", "college name is required")
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		return nil, domain.Validation("location", "location is required")
	}

	cafeterias := make([]string, 0, len(in.Cafeterias))
	seen := make(map[string]bool, len(in.Cafeterias))
	for _, caf := range in.Cafeterias {
		caf = strings.TrimSpace(caf)
		if caf == "" || seen[caf] {
			continue
		}
		seen[caf] = true
		cafeterias = append(cafeterias, caf)
	}

	return &domain.College{
		Name:        name,
		Location:    location,
		Description: strings.TrimSpace(in.Description),
		Icon:        strings.TrimSpace(in.Icon),
		Image:       strings.TrimSpace(in.Image),
		Cafeterias:  cafeterias,
	}, nil
}

func menuItemFromInput(in MenuItemInput) (*domain.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name", "item name is required")
	}
	if in.PriceCents <= 0 {
		return nil, domain.Validation("priceCents", "price must be positive")
	}
	cafeteria := strings.TrimSpace(in.Cafeteria)
	if cafeteria == "" {
		return nil, domain.Validation("cafeteria", "cafeteria is required")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = string(domain.CategorySnacks)
	}
	if !domain.ValidCategory(category) {
		return nil, domain.Validation("category", "unknown category")
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}

	return &domain.MenuItem{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		PriceCents:  in.PriceCents,
		Category:    domain.Category(category),
		Veg:         in.Veg,
		Cafeteria:   cafeteria,
		Image:       strings.TrimSpace(in.Image),
		Available:   available,
	}, nil
}
