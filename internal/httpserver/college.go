package httpserver

import (
	"net/http"

	"quickbite/internal/domain"
	catalogsvc "quickbite/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

func listCollegesHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		colleges, err := svc.ListColleges(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if colleges == nil {
			colleges = []domain.College{}
		}
		respondData(c, http.StatusOK, colleges)
	}
}

func getCollegeHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		college, err := svc.GetCollege(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, college)
	}
}

func createCollegeHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.CollegeInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, domain.Validation("body", "invalid JSON payload"))
			return
		}
		college, err := svc.CreateCollege(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusCreated, college)
	}
}

func updateCollegeHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.CollegeInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, domain.Validation("body", "invalid JSON payload"))
			return
		}
		college, err := svc.UpdateCollege(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, college)
	}
}
