package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"chenu2/internal/caching"
	"chenu2/internal/models"
	"chenu2/internal/repositories"
)

const optionsCacheTTL = 10 * time.Minute

// CatalogService backs the public browse endpoints: categories, products,
// variants, colors and the option listing with its product-over-category
// name precedence. All reads, no writes.
type CatalogService interface {
	MainCategories(ctx context.Context, companyID int64) ([]*models.Category, error)
	SubCategories(ctx context.Context, parentID int64) ([]*models.Category, error)
	ProductsByCategory(ctx context.Context, categoryID int64) ([]*models.Product, error)
	// OptionsForProduct merges product-specific options with the defaults of
	// every category on the product's ancestor chain, deduplicated by name
	// with product-specific options winning, sorted by id. productID 0 lists
	// all company options without merging.
	OptionsForProduct(ctx context.Context, companyID, productID int64) ([]*models.Option, error)
	VariantsByProduct(ctx context.Context, productID int64) ([]*models.ProductVariant, error)
	ColorsByCompany(ctx context.Context, companyID int64) ([]*models.Color, error)
}

type catalogService struct {
	categories repositories.CategoryRepository
	products   repositories.ProductRepository
	options    repositories.OptionRepository
	variants   repositories.VariantRepository
	colors     repositories.ColorRepository
	cache      caching.CacheService
}

func NewCatalogService(
	categories repositories.CategoryRepository,
	products repositories.ProductRepository,
	options repositories.OptionRepository,
	variants repositories.VariantRepository,
	colors repositories.ColorRepository,
	cache caching.CacheService,
) CatalogService {
	return &catalogService{
		categories: categories,
		products:   products,
		options:    options,
		variants:   variants,
		colors:     colors,
		cache:      cache,
	}
}

func (s *catalogService) MainCategories(ctx context.Context, companyID int64) ([]*models.Category, error) {
	return s.categories.ListMainByCompany(ctx, companyID)
}

func (s *catalogService) SubCategories(ctx context.Context, parentID int64) ([]*models.Category, error) {
	return s.categories.ListByParent(ctx, parentID)
}

func (s *catalogService) ProductsByCategory(ctx context.Context, categoryID int64) ([]*models.Product, error) {
	return s.products.ListByCategory(ctx, categoryID)
}

func (s *catalogService) OptionsForProduct(ctx context.Context, companyID, productID int64) ([]*models.Option, error) {
	if cached, err := s.cache.GetOptions(ctx, companyID, productID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("WARN: options cache read failed for company=%d product=%d: %v", companyID, productID, err)
	}

	var merged []*models.Option
	var err error
	if productID == 0 {
		merged, err = s.options.ListByCompany(ctx, companyID)
	} else {
		merged, err = s.mergeProductOptions(ctx, companyID, productID)
	}
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetOptions(ctx, companyID, productID, merged, optionsCacheTTL); err != nil {
		log.Printf("WARN: options cache write failed for company=%d product=%d: %v", companyID, productID, err)
	}
	return merged, nil
}

// mergeProductOptions applies the listing precedence rule: a product-specific
// option shadows a same-named category default anywhere on the ancestor chain.
// This dedup exists only here; price aggregation sums every selected id as-is.
func (s *catalogService) mergeProductOptions(ctx context.Context, companyID, productID int64) ([]*models.Option, error) {
	productOptions, err := s.options.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %d does not exist", productID)
	}

	chain, err := s.categories.AncestorChain(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(productOptions))
	merged := make([]*models.Option, 0, len(productOptions))
	for _, option := range productOptions {
		if !seen[option.Name] {
			seen[option.Name] = true
			merged = append(merged, option)
		}
	}

	for _, ref := range chain {
		defaults, err := s.options.ListCategoryDefaults(ctx, companyID, ref.ID)
		if err != nil {
			return nil, err
		}
		for _, option := range defaults {
			if !seen[option.Name] {
				seen[option.Name] = true
				merged = append(merged, option)
			}
		}
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].ID < merged[j].ID })
	return merged, nil
}

func (s *catalogService) VariantsByProduct(ctx context.Context, productID int64) ([]*models.ProductVariant, error) {
	return s.variants.ListByProduct(ctx, productID)
}

func (s *catalogService) ColorsByCompany(ctx context.Context, companyID int64) ([]*models.Color, error) {
	return s.colors.ListByCompany(ctx, companyID)
}
