package httpserver

import (
	"net/http"
	"strconv"

	"quickbite/internal/domain"
	menurepo "quickbite/internal/repository/menu"
	catalogsvc "quickbite/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

func listMenuHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := menurepo.Filter{
			Cafeteria: c.Query("cafeteria"),
			Category:  c.Query("category"),
		}
		if raw := c.Query("veg"); raw != "" {
			veg, err := strconv.ParseBool(raw)
			if err != nil {
				respondError(c, domain.Validation("veg", "must be true or false"))
				return
			}
			f.Veg = &veg
		}

		items, err := svc.ListMenu(c.Request.Context(), f)
		if err != nil {
			respondError(c, err)
			return
		}
		if items == nil {
			items = []domain.MenuItem{}
		}
		respondData(c, http.StatusOK, items)
	}
}

func getMenuItemHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.GetMenuItem(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, item)
	}
}

func createMenuItemHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.MenuItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, domain.Validation("body", "invalid JSON payload"))
			return
		}
		item, err := svc.CreateMenuItem(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusCreated, item)
	}
}

func updateMenuItemHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.MenuItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, domain.Validation("body", "invalid JSON payload"))
			return
		}
		item, err := svc.UpdateMenuItem(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, item)
	}
}
