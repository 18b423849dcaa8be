// Package order converts cart snapshots into persisted orders and advances
// them through the fixed status progression. Totals are always recomputed
// here from the line snapshots; client-submitted totals are informational.
package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"quickbite/internal/cart"
	"quickbite/internal/domain"
	orderrepo "quickbite/internal/repository/order"
)

// tokenAttempts bounds redraws when a generated token already exists.
const tokenAttempts = 5

type Service struct {
	repo orderRepo
	now  func() time.Time
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, completedAt *time.Time) (*domain.Order, error)
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create persists a new Pending order from a cart snapshot. The cart must be
// non-empty and the user authenticated; the order total is the sum of the
// cart's line subtotals. The generated pickup token is unique across all
// orders: a store-level conflict triggers a redraw instead of overwriting.
func (s *Service) Create(ctx context.Context, user *domain.User, c *cart.Cart, college, notes string) (*domain.Order, error) {
	if user == nil || user.ID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if c == nil || c.Empty() {
		return nil, domain.ErrEmptyCart
	}

	lines := make([]domain.OrderLine, 0, c.Len())
	var total int64
	for _, l := range c.Lines() {
		subtotal := l.UnitPriceCents * int64(l.Quantity)
		total += subtotal
		lines = append(lines, domain.OrderLine{
			MenuItemID:     l.MenuItemID,
			Name:           l.Name,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			SubtotalCents:  subtotal,
		})
	}

	o := domain.Order{
		UserID:     user.ID,
		Lines:      lines,
		College:    strings.TrimSpace(college),
		Cafeteria:  c.Cafeteria(),
		TotalCents: total,
		Status:     domain.StatusPending,
		Notes:      strings.TrimSpace(notes),
	}

	for i := 0; i < tokenAttempts; i++ {
		token, err := newOrderToken()
		if err != nil {
			return nil, err
		}
		o.Token = token

		created, err := s.repo.Create(ctx, o)
		if err == nil {
			return created, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return nil, err
	}
	return nil, errors.New("order token collision")
}

// AdvanceStatus moves an order to next if the state machine permits it.
// Reaching Completed stamps the completion time.
func (s *Service) AdvanceStatus(ctx context.Context, id string, next domain.Status) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	var completedAt *time.Time
	if next == domain.StatusCompleted {
		t := s.now().UTC()
		completedAt = &t
	}
	return s.repo.UpdateStatus(ctx, id, next, completedAt)
}

// Cancel aborts a non-terminal order. Cancelling a Completed or Cancelled
// order is rejected, not silently accepted.
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Order, error) {
	return s.AdvanceStatus(ctx, id, domain.StatusCancelled)
}

// Get returns a single order by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByUser returns a user's orders newest-first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
