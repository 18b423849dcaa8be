package httpserver

import (
	"net/http"

	"quickbite/internal/cart"
	"quickbite/internal/domain"

	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	College string             `json:"college"`
	Notes   string             `json:"notes"`
	Items   []orderItemRequest `json:"items"`
	// TotalCents is accepted for client convenience but never trusted; the
	// order service recomputes the total from line snapshots.
	TotalCents int64 `json:"totalCents"`
}

// Quantity is a pointer so an omitted quantity (defaults to 1) stays
// distinguishable from an explicit zero, which is rejected.
type orderItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   *int   `json:"quantity"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func createOrderHandler(orders OrderService, catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, domain.Validation("body", "invalid JSON payload"))
			return
		}

		// Rebuild the client's cart from live catalog records. Cart rules
		// apply: unavailable items and items from a second cafeteria drop out
		// silently, and a cart that ends up empty cannot check out.
		basket := cart.New()
		for _, line := range req.Items {
			qty := 1
			if line.Quantity != nil {
				qty = *line.Quantity
			}
			if qty < 1 {
				respondError(c, domain.Validation("items", "quantity must be at least 1"))
				return
			}
			item, err := catalog.GetMenuItem(c.Request.Context(), line.MenuItemID)
			if err != nil {
				respondError(c, err)
				return
			}
			basket.Add(*item)
			if qty > 1 {
				basket.ChangeQuantity(item.ID, qty-1)
			}
		}

		if err := checkCollege(c, catalog, req.College, basket.Cafeteria()); err != nil {
			respondError(c, err)
			return
		}

		o, err := orders.Create(c.Request.Context(), currentUser(c), basket, req.College, req.Notes)
		if err != nil {
			respondError(c, err)
			return
		}
		basket.Clear()
		respondData(c, http.StatusCreated, o)
	}
}

// checkCollege rejects checkout when the named college exists but does not
// own the cart's cafeteria. Unknown college names pass through; the name is
// stored as submitted.
func checkCollege(c *gin.Context, catalog CatalogService, collegeName, cafeteria string) error {
	if collegeName == "" || cafeteria == "" {
		return nil
	}
	colleges, err := catalog.ListColleges(c.Request.Context())
	if err != nil {
		return err
	}
	for _, col := range colleges {
		if col.Name != collegeName {
			continue
		}
		if !col.HasCafeteria(cafeteria) {
			return domain.Validation("college", "cafeteria does not belong to this college")
		}
		return nil
	}
	return nil
}

func getOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := orders.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		u := currentUser(c)
		if u == nil || (o.UserID != u.ID && !u.IsAdmin()) {
			respondError(c, domain.ErrForbidden)
			return
		}
		respondData(c, http.StatusOK, o)
	}
}

func listUserOrdersHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		u := currentUser(c)
		if u == nil || (userID != u.ID && !u.IsAdmin()) {
			respondError(c, domain.ErrForbidden)
			return
		}
		list, err := orders.ListByUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		if list == nil {
			list = []domain.Order{}
		}
		respondData(c, http.StatusOK, list)
	}
}

func updateOrderStatusHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, domain.Validation("body", "invalid JSON payload"))
			return
		}
		status, ok := domain.ParseStatus(req.Status)
		if !ok {
			respondError(c, domain.Validation("status", "unknown status"))
			return
		}
		o, err := orders.AdvanceStatus(c.Request.Context(), c.Param("id"), status)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, o)
	}
}

// cancelOrderHandler maps DELETE onto cancellation: the order survives with
// status Cancelled.
func cancelOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		o, err := orders.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		u := currentUser(c)
		if u == nil || (o.UserID != u.ID && !u.IsAdmin()) {
			respondError(c, domain.ErrForbidden)
			return
		}
		cancelled, err := orders.Cancel(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, cancelled)
	}
}
