// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

// CachingProductRepository decorates a ProductRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. List queries are cached per filter;
// every write invalidates the whole namespace.
type CachingProductRepository struct {
	inner     usecase.ProductRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingProductRepository decorates a ProductRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "products".
func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProductRepository, namespace string) *CachingProductRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "products"
	}
	return &CachingProductRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Find retrieves products, checking cache first then falling back to the store.
func (c *CachingProductRepository) Find(ctx context.Context, filter bson.M) ([]entity.Product, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Find(ctx, filter)
	}

	key := c.cacheKey(filter)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Product
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the store
	out, err := c.inner.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID passes through to the store. Single-document reads are cheap
// enough that caching them is not worth the invalidation bookkeeping.
func (c *CachingProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (entity.Product, error) {
	return c.inner.FindByID(ctx, id)
}

// Insert inserts a product and invalidates cached list queries.
func (c *CachingProductRepository) Insert(ctx context.Context, doc entity.Product) (*usecase.InsertResult, error) {
	res, err := c.inner.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return res, nil
}

// Update applies a patch and invalidates cached list queries.
func (c *CachingProductRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*usecase.UpdateResult, error) {
	res, err := c.inner.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return res, nil
}

// Delete removes a product and invalidates cached list queries.
func (c *CachingProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (*usecase.DeleteResult, error) {
	res, err := c.inner.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return res, nil
}

// invalidate drops every cached list query in the namespace.
func (c *CachingProductRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*") // Best effort: don't fail the write if cache deletion fails
}

// cacheKey generates a cache key for a specific list query. The filter's
// category and title values distinguish queries; other keys never appear
// in filters built by the usecase.
func (c *CachingProductRepository) cacheKey(filter bson.M) string {
	category, _ := filter[entity.FieldCategory].(string)
	search := ""
	if re, ok := filter[entity.FieldTitle].(primitive.Regex); ok {
		search = re.Pattern
	}
	return fmt.Sprintf("%s:%s:%s", c.namespace, safe(category), safe(search))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingProductRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	// Simple escaping of characters that are problematic for Redis keys
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
