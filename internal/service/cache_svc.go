package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Document bodies never change after ingestion, so the text TTL
// is generous; folder listings grow with every ingest run and expire faster.
const (
	DocTextTTL = 30 * time.Minute
	ListingTTL = 2 * time.Minute
)

// CacheService provides a Redis cache-aside layer for document text and
// folder listings.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client and every
// cache operation becomes a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// Enabled reports whether a Redis connection is actually backing the cache.
func (c *CacheService) Enabled() bool {
	return c.rdb != nil
}

// GetDocText retrieves cached document text. Returns "" if not cached.
func (c *CacheService) GetDocText(ctx context.Context, docID string) (string, error) {
	if c.rdb == nil {
		return "", nil
	}
	text, err := c.rdb.Get(ctx, docTextKey(docID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return text, err
}

// SetDocText stores a document's text in cache.
func (c *CacheService) SetDocText(ctx context.Context, docID, text string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Set(ctx, docTextKey(docID), text, DocTextTTL).Err()
}

// GetListing retrieves a cached folder listing. Returns nil if not cached.
func (c *CacheService) GetListing(ctx context.Context, folderID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, listingKey(folderID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetListing stores a folder listing in cache.
func (c *CacheService) SetListing(ctx context.Context, folderID string, listing interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listingKey(folderID), b, ListingTTL).Err()
}

// InvalidateListing drops a folder listing from cache (called after the
// ingestion flow adds documents to the folder).
func (c *CacheService) InvalidateListing(ctx context.Context, folderID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, listingKey(folderID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func docTextKey(docID string) string {
	return fmt.Sprintf("doctext:%s", docID)
}

func listingKey(folderID string) string {
	return fmt.Sprintf("folder:%s", folderID)
}
