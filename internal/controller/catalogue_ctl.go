package controller

import (
	"strings"

	"github.com/gin-gonic/gin"

	"trustcam_backend/internal/api/dto"
	"trustcam_backend/internal/service"
)

type CatalogueController struct {
	catalogueService *service.CatalogueService
}

func NewCatalogueController(catalogueService *service.CatalogueService) *CatalogueController {
	return &CatalogueController{catalogueService: catalogueService}
}

// GetCatalogue returns the filtered catalogue with sidebar and facets
// @Summary Browse the catalogue
// @Tags Catalogue
// @Param categorie query string false "Category slug"
// @Param region query string false "Region"
// @Param ville query string false "City"
// @Param etat query string false "Retail condition"
// @Param region_origine query string false "Agricultural origin region"
// @Success 200 {object} dto.CatalogueResp
// @Router /api/catalogue [get]
func (ctrl *CatalogueController) GetCatalogue(c *gin.Context) {
	filters := service.CatalogueFilters{
		Category:     strings.TrimSpace(c.Query("categorie")),
		Region:       strings.TrimSpace(c.Query("region")),
		City:         strings.TrimSpace(c.Query("ville")),
		Condition:    strings.TrimSpace(c.Query("etat")),
		OriginRegion: strings.TrimSpace(c.Query("region_origine")),
	}

	view, err := ctrl.catalogueService.Browse(c.Request.Context(), filters)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "catalogue query failed: " + err.Error()})
		return
	}

	c.JSON(200, dto.CatalogueResp{Code: 0, Message: "success", Data: view})
}

// GetCategories returns the category tree
// @Summary List categories as roots with children
// @Tags Catalogue
// @Success 200 {object} dto.CategoryTreeResp
// @Router /api/categories [get]
func (ctrl *CatalogueController) GetCategories(c *gin.Context) {
	tree, err := ctrl.catalogueService.CategoryTree(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "category query failed: " + err.Error()})
		return
	}
	c.JSON(200, dto.CategoryTreeResp{Code: 0, Message: "success", Data: tree})
}
