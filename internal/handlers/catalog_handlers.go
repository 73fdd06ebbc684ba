package handlers

import (
	"net/http"

	"chenu2/internal/common"
	"chenu2/internal/services"

	"github.com/labstack/echo/v4"
)

// CatalogHandlers serves the public browse endpoints the quote UI reads:
// categories, products, options, variants and colors.
type CatalogHandlers struct {
	catalogService services.CatalogService
}

func NewCatalogHandlers(catalogService services.CatalogService) *CatalogHandlers {
	return &CatalogHandlers{catalogService: catalogService}
}

// ListMainCategories handles GET /api/categories?companyId=
func (h *CatalogHandlers) ListMainCategories(c echo.Context) error {
	companyID, err := common.ParseID(c.QueryParam("companyId"), "companyId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	categories, err := h.catalogService.MainCategories(c.Request().Context(), companyID)
	if err != nil {
		return common.SendServerError(c, "Failed to list categories")
	}
	return c.JSON(http.StatusOK, categories)
}

// ListSubCategories handles GET /api/subcategories?parentId=
func (h *CatalogHandlers) ListSubCategories(c echo.Context) error {
	parentID, err := common.ParseID(c.QueryParam("parentId"), "parentId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	categories, err := h.catalogService.SubCategories(c.Request().Context(), parentID)
	if err != nil {
		return common.SendServerError(c, "Failed to list sub categories")
	}
	return c.JSON(http.StatusOK, categories)
}

// ListProducts handles GET /api/products?categoryId=
func (h *CatalogHandlers) ListProducts(c echo.Context) error {
	categoryID, err := common.ParseID(c.QueryParam("categoryId"), "categoryId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	products, err := h.catalogService.ProductsByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return common.SendServerError(c, "Failed to list products")
	}
	return c.JSON(http.StatusOK, products)
}

// ListOptions handles GET /api/options?companyId=&productId=
// With productId present the listing merges product-specific and
// category-default options, product options shadowing same-named defaults.
func (h *CatalogHandlers) ListOptions(c echo.Context) error {
	companyID, err := common.ParseID(c.QueryParam("companyId"), "companyId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	productID, err := common.ParseOptionalID(c.QueryParam("productId"), "productId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	options, err := h.catalogService.OptionsForProduct(c.Request().Context(), companyID, productID)
	if err != nil {
		return common.SendServerError(c, "Failed to list options")
	}
	return c.JSON(http.StatusOK, options)
}

// ListVariants handles GET /api/variants?productId=
func (h *CatalogHandlers) ListVariants(c echo.Context) error {
	productID, err := common.ParseID(c.QueryParam("productId"), "productId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	variants, err := h.catalogService.VariantsByProduct(c.Request().Context(), productID)
	if err != nil {
		return common.SendServerError(c, "Failed to list variants")
	}
	return c.JSON(http.StatusOK, variants)
}

// ListColors handles GET /api/colors?companyId=
func (h *CatalogHandlers) ListColors(c echo.Context) error {
	companyID, err := common.ParseID(c.QueryParam("companyId"), "companyId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	colors, err := h.catalogService.ColorsByCompany(c.Request().Context(), companyID)
	if err != nil {
		return common.SendServerError(c, "Failed to list colors")
	}
	return c.JSON(http.StatusOK, colors)
}
