package services

import (
	"context"
	"log"
	"time"

	"chenu2/internal/caching"
	"chenu2/internal/models"
	"chenu2/internal/pricing"
	"chenu2/internal/repositories"
)

const productCacheTTL = 10 * time.Minute

// EstimationService turns an estimate request into a priced quote: it loads
// the product with its category chain, lets the selector pick a pricing rule,
// adds the selected option surcharges and multiplies by quantity. The whole
// calculation is read-only; any failure aborts it unchanged, partial results
// are never returned.
type EstimationService interface {
	Calculate(ctx context.Context, req *models.EstimateRequest) (*models.EstimateResponse, error)
}

type estimationService struct {
	products repositories.ProductRepository
	selector *pricing.Selector
	options  *pricing.OptionAggregator
	cache    caching.CacheService
}

func NewEstimationService(
	products repositories.ProductRepository,
	selector *pricing.Selector,
	options *pricing.OptionAggregator,
	cache caching.CacheService,
) EstimationService {
	return &estimationService{
		products: products,
		selector: selector,
		options:  options,
		cache:    cache,
	}
}

func (s *estimationService) Calculate(ctx context.Context, req *models.EstimateRequest) (*models.EstimateResponse, error) {
	if req.Quantity < 1 {
		return nil, pricing.ErrInvalidQuantity
	}

	product, err := s.loadProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, pricing.ErrProductNotFound
	}

	calculator, err := s.selector.Select(product)
	if err != nil {
		return nil, err
	}

	basePrice, err := calculator.BasePrice(ctx, product, req)
	if err != nil {
		return nil, err
	}

	optionsTotal, err := s.options.TotalOptionPrice(ctx, req.OptionIDs)
	if err != nil {
		return nil, err
	}

	unitTotal := basePrice + optionsTotal
	finalPrice := unitTotal * req.Quantity
	log.Printf("estimate calculated: productId=%d unitPrice=%d optionsTotal=%d quantity=%d totalPrice=%d",
		product.ID, basePrice, optionsTotal, req.Quantity, finalPrice)

	return &models.EstimateResponse{
		ProductName: product.Name,
		UnitPrice:   basePrice,
		OptionPrice: optionsTotal,
		Quantity:    req.Quantity,
		TotalPrice:  finalPrice,
	}, nil
}

// loadProduct reads through the cache. Cache failures degrade to a direct
// repository read instead of failing the estimate.
func (s *estimationService) loadProduct(ctx context.Context, productID int64) (*models.CatalogProduct, error) {
	if cached, err := s.cache.GetCatalogProduct(ctx, productID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("WARN: product cache read failed for %d: %v", productID, err)
	}

	product, err := s.products.GetCatalogProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if err := s.cache.SetCatalogProduct(ctx, product, productCacheTTL); err != nil {
		log.Printf("WARN: product cache write failed for %d: %v", productID, err)
	}
	return product, nil
}
