package domain

import "time"

// College is a campus with one or more named cafeterias.
type College struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Image       string    `json:"image,omitempty"`
	Cafeterias  []string  `json:"cafeterias"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasCafeteria reports whether name is one of the college's cafeterias.
func (c College) HasCafeteria(name string) bool {
	for _, caf := range c.Cafeterias {
		if caf == name {
			return true
		}
	}
	return false
}
