package controllers

import (
	"net/http"
	"strings"

	"bakery-shop/middleware"
	"bakery-shop/models"
	"bakery-shop/services"
	"bakery-shop/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// @Summary Featured products
// @Description Newline separated names of the featured products, in display order
// @Tags Catalog
// @Produce plain
// @Success 200 {string} string
// @Failure 500 {string} string
// @Router /featured [get]
func (ctrl *CatalogController) GetFeatured(c *gin.Context) {
	names, err := ctrl.catalog.Featured(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.String(http.StatusOK, strings.Join(names, "\n"))
}

// @Summary List products
// @Description Filter by dash separated name tokens and sort by name or price
// @Tags Catalog
// @Produce json
// @Param contains query string false "Dash joined tokens, e.g. mini-palmiers"
// @Param sort query string false "Sort key" Enums(name, price)
// @Param direction query string false "Sort direction" Enums(asc, desc)
// @Success 200 {array} models.Product
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	q := c.MustGet(middleware.ProductQueryKey).(models.ProductQuery)

	products, err := ctrl.catalog.ListProducts(c.Request.Context(), q)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param name path string true "Product in dash form, e.g. mini-palmiers"
// @Success 200 {object} models.Product
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /products/{name} [get]
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	product, err := ctrl.catalog.GetProduct(c.Request.Context(), utils.Slugify(c.Param("name")))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary Product flavors
// @Tags Catalog
// @Produce json
// @Param name path string true "Product in dash form"
// @Success 200 {array} string
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /flavors/{name} [get]
func (ctrl *CatalogController) GetFlavors(c *gin.Context) {
	flavors, err := ctrl.catalog.GetProductFlavors(c.Request.Context(), utils.Slugify(c.Param("name")))
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, flavors)
}

// @Summary Macaron flavors
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.MacaronFlavor
// @Failure 500 {string} string
// @Router /macaron-flavors [get]
func (ctrl *CatalogController) GetMacaronFlavors(c *gin.Context) {
	flavors, err := ctrl.catalog.MacaronFlavors(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, flavors)
}

// @Summary Box decorations
// @Tags Catalog
// @Produce plain
// @Success 200 {string} string
// @Failure 500 {string} string
// @Router /box-decorations [get]
func (ctrl *CatalogController) GetBoxDecorations(c *gin.Context) {
	styles, err := ctrl.catalog.BoxDecorations(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.String(http.StatusOK, strings.Join(styles, "\n"))
}

// @Summary Frequently asked questions
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.FAQEntry
// @Failure 500 {string} string
// @Router /faq [get]
func (ctrl *CatalogController) GetFAQ(c *gin.Context) {
	entries, err := ctrl.catalog.FAQ(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Customized description
// @Description Product description with the chosen flavor and box decoration filled in
// @Tags Catalog
// @Accept json
// @Produce plain
// @Param input body models.CustomDescriptionRequest true "Customization"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /custom-description [post]
func (ctrl *CatalogController) PostCustomDescription(c *gin.Context) {
	req := c.MustGet(middleware.RequestBodyKey).(models.CustomDescriptionRequest)

	description, err := ctrl.catalog.GetCustomDescription(c.Request.Context(),
		utils.Slugify(req.Product), req.Flavor, req.Box)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.String(http.StatusOK, description)
}
