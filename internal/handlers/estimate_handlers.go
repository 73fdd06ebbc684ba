package handlers

import (
	"errors"
	"log"
	"net/http"

	"chenu2/internal/common"
	"chenu2/internal/models"
	"chenu2/internal/pricing"
	"chenu2/internal/services"

	"github.com/labstack/echo/v4"
)

// EstimateHandlers exposes the price calculation and quote document endpoints.
type EstimateHandlers struct {
	estimationService services.EstimationService
	pdfService        services.EstimatePdfService
}

func NewEstimateHandlers(estimationService services.EstimationService, pdfService services.EstimatePdfService) *EstimateHandlers {
	return &EstimateHandlers{
		estimationService: estimationService,
		pdfService:        pdfService,
	}
}

// Calculate handles POST /api/estimates/calculate
func (h *EstimateHandlers) Calculate(c echo.Context) error {
	req := &models.EstimateRequest{}
	if err := c.Bind(req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if req.ProductID <= 0 {
		return common.SendValidationError(c, "productId", "productId is required")
	}
	if req.Quantity < 1 {
		return common.SendValidationError(c, "quantity", "quantity must be at least 1")
	}

	response, err := h.estimationService.Calculate(c.Request().Context(), req)
	if err != nil {
		return estimateError(c, req.ProductID, err)
	}

	log.Printf("estimate done: productId=%d totalPrice=%d", req.ProductID, response.TotalPrice)
	return c.JSON(http.StatusOK, response)
}

// Ping handles GET /api/estimates/ping
func (h *EstimateHandlers) Ping(c echo.Context) error {
	return c.String(http.StatusOK, "Chenu Estimate System is Running!")
}

// GeneratePdf handles POST /api/estimates/pdf
func (h *EstimateHandlers) GeneratePdf(c echo.Context) error {
	req := &models.EstimatePdfRequest{}
	if err := c.Bind(req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if len(req.Items) == 0 {
		return common.SendValidationError(c, "items", "at least one item is required")
	}

	url, err := h.pdfService.Generate(c.Request().Context(), req)
	if err != nil {
		log.Printf("ERROR: estimate pdf generation failed: %v", err)
		return common.SendServerError(c, "Failed to generate estimate document")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pdf_url":    url,
		"expires_in": "24 hours",
	})
}

// estimateError maps calculation failures onto client-facing statuses. All of
// them are bad-input or missing-catalog-data conditions, so everything is 4xx;
// only unexpected storage failures become 500s.
func estimateError(c echo.Context, productID int64, err error) error {
	switch {
	case errors.Is(err, pricing.ErrProductNotFound):
		return common.SendNotFoundError(c, "Product")
	case errors.Is(err, pricing.ErrNoCalculator),
		errors.Is(err, pricing.ErrBasePriceNotSet),
		errors.Is(err, pricing.ErrWidthRequired),
		errors.Is(err, pricing.ErrDimensionsRequired),
		errors.Is(err, pricing.ErrNoPriceTier),
		errors.Is(err, pricing.ErrVariantNotFound),
		errors.Is(err, pricing.ErrInvalidQuantity):
		return common.SendClientError(c, err.Error())
	default:
		log.Printf("ERROR: estimate calculation failed: productId=%d err=%v", productID, err)
		return common.SendServerError(c, "Estimate calculation failed")
	}
}
