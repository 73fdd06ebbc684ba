package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"chenu2/internal/models"

	"github.com/redis/go-redis/v9"
)

// Catalog data is read-mostly: products and option lists are cached
// read-through and invalidated whenever the admin API writes.
type CacheService interface {
	GetCatalogProduct(ctx context.Context, productID int64) (*models.CatalogProduct, error)
	SetCatalogProduct(ctx context.Context, product *models.CatalogProduct, ttl time.Duration) error
	DeleteProduct(ctx context.Context, productID int64) error

	// Option listings keyed by (company, product); productID 0 means the
	// company-wide listing.
	GetOptions(ctx context.Context, companyID, productID int64) ([]*models.Option, error)
	SetOptions(ctx context.Context, companyID, productID int64, options []*models.Option, ttl time.Duration) error
	InvalidateCompany(ctx context.Context, companyID int64) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// accept redis://host:port style addresses as well
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func productKey(productID int64) string {
	return fmt.Sprintf("chenu:product:%d", productID)
}

func optionsKey(companyID, productID int64) string {
	return fmt.Sprintf("chenu:options:%d:%d", companyID, productID)
}

func (r *redisCacheService) GetCatalogProduct(ctx context.Context, productID int64) (*models.CatalogProduct, error) {
	data, err := r.client.Get(ctx, productKey(productID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var product models.CatalogProduct
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *redisCacheService) SetCatalogProduct(ctx context.Context, product *models.CatalogProduct, ttl time.Duration) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, productKey(product.ID), data, ttl).Err()
}

func (r *redisCacheService) DeleteProduct(ctx context.Context, productID int64) error {
	return r.client.Del(ctx, productKey(productID)).Err()
}

func (r *redisCacheService) GetOptions(ctx context.Context, companyID, productID int64) ([]*models.Option, error) {
	data, err := r.client.Get(ctx, optionsKey(companyID, productID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var options []*models.Option
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (r *redisCacheService) SetOptions(ctx context.Context, companyID, productID int64, options []*models.Option, ttl time.Duration) error {
	data, err := json.Marshal(options)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, optionsKey(companyID, productID), data, ttl).Err()
}

func (r *redisCacheService) InvalidateCompany(ctx context.Context, companyID int64) error {
	// option listings are company scoped; products are invalidated per id on
	// write, so only the listing keys need scanning here
	pattern := fmt.Sprintf("chenu:options:%d:*", companyID)
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
