package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	catalogusecase "shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/cache"
)

// NewProductRepository decorates the given repository with a Redis list
// cache when Redis is available. Otherwise it returns the repository
// unwrapped and the server runs without caching.
func NewProductRepository(rdb *redis.Client, ttl time.Duration, inner catalogusecase.ProductRepository) catalogusecase.ProductRepository {
	if rdb != nil {
		return cache.NewCachingProductRepository(rdb, ttl, inner, "products")
	}
	return inner
}
