package domain

import "time"

// Status is the position of an order in its lifecycle.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// ParseStatus maps a string onto a known Status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// Terminal reports whether no further transitions are permitted.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// next holds the single forward step for each non-terminal status.
var next = map[Status]Status{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusCompleted,
}

// CanTransitionTo reports whether the one-step forward path or the abort path
// permits moving from s to target. Skipping forward steps is not allowed, and
// Ready orders can no longer be cancelled.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Terminal() {
		return false
	}
	if target == StatusCancelled {
		return s == StatusPending || s == StatusConfirmed || s == StatusPreparing
	}
	return next[s] == target
}

// OrderLine is one menu item within an order, with the unit price snapshotted
// at order time.
type OrderLine struct {
	MenuItemID     string `json:"menuItemId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	SubtotalCents  int64  `json:"subtotalCents"`
}

// Order is a persisted checkout. It is never deleted; cancellation is a status.
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Lines       []OrderLine `json:"items"`
	College     string      `json:"college"`
	Cafeteria   string      `json:"cafeteria"`
	TotalCents  int64       `json:"totalCents"`
	Status      Status      `json:"status"`
	Notes       string      `json:"notes,omitempty"`
	Token       string      `json:"orderToken"`
	CreatedAt   time.Time   `json:"createdAt"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}
