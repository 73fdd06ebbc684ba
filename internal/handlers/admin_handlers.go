package handlers

import (
	"log"
	"net/http"
	"strings"

	"chenu2/internal/caching"
	"chenu2/internal/common"
	"chenu2/internal/models"
	"chenu2/internal/repositories"

	"github.com/labstack/echo/v4"
)

// AdminHandlers covers the authenticated catalog maintenance surface:
// companies, categories, products, variants, options, pricing-matrix rows and
// colors. Writes invalidate the affected cache entries so the public quote
// API reads fresh data.
type AdminHandlers struct {
	companies  repositories.CompanyRepository
	categories repositories.CategoryRepository
	products   repositories.ProductRepository
	variants   repositories.VariantRepository
	options    repositories.OptionRepository
	matrix     repositories.PricingMatrixRepository
	colors     repositories.ColorRepository
	cache      caching.CacheService
}

func NewAdminHandlers(
	companies repositories.CompanyRepository,
	categories repositories.CategoryRepository,
	products repositories.ProductRepository,
	variants repositories.VariantRepository,
	options repositories.OptionRepository,
	matrix repositories.PricingMatrixRepository,
	colors repositories.ColorRepository,
	cache caching.CacheService,
) *AdminHandlers {
	return &AdminHandlers{
		companies:  companies,
		categories: categories,
		products:   products,
		variants:   variants,
		options:    options,
		matrix:     matrix,
		colors:     colors,
		cache:      cache,
	}
}

// ListCompanies handles GET /api/admin/companies
func (h *AdminHandlers) ListCompanies(c echo.Context) error {
	companies, err := h.companies.List(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to list companies")
	}
	return c.JSON(http.StatusOK, companies)
}

// CreateCompany handles POST /api/admin/companies
func (h *AdminHandlers) CreateCompany(c echo.Context) error {
	req := &struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}{}
	if err := c.Bind(req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}
	if err := common.ValidateRequiredString(req.Code, "code"); err != nil {
		return common.SendValidationError(c, "code", err.Error())
	}

	ctx := c.Request().Context()
	existing, err := h.companies.GetByCode(ctx, req.Code)
	if err != nil {
		return common.SendServerError(c, "Failed to check company code")
	}
	if existing != nil {
		return common.SendClientError(c, "Company code already exists")
	}

	company := &models.Company{Name: strings.TrimSpace(req.Name), Code: strings.TrimSpace(req.Code)}
	if err := h.companies.Create(ctx, company); err != nil {
		return common.SendServerError(c, "Failed to create company")
	}
	return c.JSON(http.StatusCreated, company)
}

// CreateCategory handles POST /api/admin/categories
func (h *AdminHandlers) CreateCategory(c echo.Context) error {
	category := &models.Category{}
	if err := c.Bind(category); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if category.CompanyID <= 0 {
		return common.SendValidationError(c, "company_id", "company_id is required")
	}
	if err := common.ValidateRequiredString(category.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}
	if err := common.ValidateRequiredString(category.Code, "code"); err != nil {
		return common.SendValidationError(c, "code", err.Error())
	}

	if err := h.categories.Create(c.Request().Context(), category); err != nil {
		return common.SendServerError(c, "Failed to create category")
	}
	return c.JSON(http.StatusCreated, category)
}

// CreateProduct handles POST /api/admin/products
func (h *AdminHandlers) CreateProduct(c echo.Context) error {
	product := &models.Product{}
	if err := c.Bind(product); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if product.CompanyID <= 0 || product.CategoryID <= 0 {
		return common.SendValidationError(c, "category_id", "company_id and category_id are required")
	}
	if err := common.ValidateRequiredString(product.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}
	if product.BasePrice < 0 {
		return common.SendValidationError(c, "base_price", "base_price cannot be negative")
	}

	if err := h.products.Create(c.Request().Context(), product); err != nil {
		return common.SendServerError(c, "Failed to create product")
	}
	return c.JSON(http.StatusCreated, product)
}

// SearchProducts handles GET /api/admin/products/search?companyId=&q=
func (h *AdminHandlers) SearchProducts(c echo.Context) error {
	companyID, err := common.ParseID(c.QueryParam("companyId"), "companyId")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}
	limit, offset := common.ValidatePaginationParams(parseIntDefault(c.QueryParam("limit"), 50), parseIntDefault(c.QueryParam("offset"), 0))

	products, err := h.products.Search(c.Request().Context(), companyID, c.QueryParam("q"), limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to search products")
	}
	return c.JSON(http.StatusOK, products)
}

// UpdateProduct handles PUT /api/admin/products/:id
func (h *AdminHandlers) UpdateProduct(c echo.Context) error {
	id, err := common.ParseID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	ctx := c.Request().Context()
	existing, err := h.products.GetByID(ctx, id)
	if err != nil {
		return common.SendServerError(c, "Failed to load product")
	}
	if existing == nil {
		return common.SendNotFoundError(c, "Product")
	}

	product := &models.Product{}
	if err := c.Bind(product); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	product.ID = id
	product.CompanyID = existing.CompanyID
	if product.CategoryID == 0 {
		product.CategoryID = existing.CategoryID
	}
	if product.Name == "" {
		product.Name = existing.Name
	}

	if err := h.products.Update(ctx, product); err != nil {
		return common.SendServerError(c, "Failed to update product")
	}
	h.invalidateProduct(c, existing.CompanyID, id)
	return c.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/admin/products/:id
func (h *AdminHandlers) DeleteProduct(c echo.Context) error {
	id, err := common.ParseID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	ctx := c.Request().Context()
	existing, err := h.products.GetByID(ctx, id)
	if err != nil {
		return common.SendServerError(c, "Failed to load product")
	}
	if existing == nil {
		return common.SendNotFoundError(c, "Product")
	}

	if err := h.products.Delete(ctx, id); err != nil {
		return common.SendServerError(c, "Failed to delete product")
	}
	h.invalidateProduct(c, existing.CompanyID, id)
	return c.NoContent(http.StatusNoContent)
}

// UpdateVariant handles PUT /api/admin/products/variants/:id
func (h *AdminHandlers) UpdateVariant(c echo.Context) error {
	id, err := common.ParseID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	variant := &models.ProductVariant{}
	if err := c.Bind(variant); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	variant.ID = id
	if variant.Price < 0 {
		return common.SendValidationError(c, "price", "price cannot be negative")
	}

	if err := h.variants.Update(c.Request().Context(), variant); err != nil {
		return common.SendServerError(c, "Failed to update variant")
	}
	if variant.ProductID > 0 {
		h.invalidateProduct(c, 0, variant.ProductID)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteVariant handles DELETE /api/admin/products/variants/:id
func (h *AdminHandlers) DeleteVariant(c echo.Context) error {
	id, err := common.ParseID(c.Param("id"), "id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.variants.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete variant")
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateOption handles POST /api/admin/options
func (h *AdminHandlers) CreateOption(c echo.Context) error {
	option := &models.Option{}
	if err := c.Bind(option); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if option.CompanyID <= 0 {
		return common.SendValidationError(c, "company_id", "company_id is required")
	}
	if err := common.ValidateRequiredString(option.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}

	if err := h.options.Create(c.Request().Context(), option); err != nil {
		return common.SendServerError(c, "Failed to create option")
	}
	h.invalidateCompany(c, option.CompanyID)
	return c.JSON(http.StatusCreated, option)
}

// CreatePricingMatrixRow handles POST /api/admin/pricing-matrix
func (h *AdminHandlers) CreatePricingMatrixRow(c echo.Context) error {
	row := &models.PricingMatrix{}
	if err := c.Bind(row); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if row.ProductID <= 0 {
		return common.SendValidationError(c, "product_id", "product_id is required")
	}
	if err := common.ValidateRequiredString(row.OptionName, "option_name"); err != nil {
		return common.SendValidationError(c, "option_name", err.Error())
	}
	if row.Price < 0 {
		return common.SendValidationError(c, "price", "price cannot be negative")
	}

	if err := h.matrix.Create(c.Request().Context(), row); err != nil {
		return common.SendServerError(c, "Failed to create pricing matrix row")
	}
	return c.JSON(http.StatusCreated, row)
}

// CreateColor handles POST /api/admin/colors
func (h *AdminHandlers) CreateColor(c echo.Context) error {
	color := &models.Color{}
	if err := c.Bind(color); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if color.CompanyID <= 0 {
		return common.SendValidationError(c, "company_id", "company_id is required")
	}
	if err := common.ValidateRequiredString(color.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}

	if err := h.colors.Create(c.Request().Context(), color); err != nil {
		return common.SendServerError(c, "Failed to create color")
	}
	return c.JSON(http.StatusCreated, color)
}

func (h *AdminHandlers) invalidateProduct(c echo.Context, companyID, productID int64) {
	ctx := c.Request().Context()
	if err := h.cache.DeleteProduct(ctx, productID); err != nil {
		log.Printf("WARN: cache invalidation failed for product %d: %v", productID, err)
	}
	if companyID > 0 {
		h.invalidateCompany(c, companyID)
	}
}

func (h *AdminHandlers) invalidateCompany(c echo.Context, companyID int64) {
	if err := h.cache.InvalidateCompany(c.Request().Context(), companyID); err != nil {
		log.Printf("WARN: cache invalidation failed for company %d: %v", companyID, err)
	}
}

func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	id, err := common.ParseID(raw, "value")
	if err != nil {
		return def
	}
	return int(id)
}
