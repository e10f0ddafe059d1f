package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"beaconia/business/recommend"
	"beaconia/domain"
	"beaconia/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "catalog:candidates:v1:"

var CacheLookupsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "beaconia_catalog_cache_lookups_total",
		Help: "Catalog candidate cache lookups by result",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(CacheLookupsTotal)
}

// Store is the byte-level cache the catalog decorator sits on.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type ClientStore struct {
	client *redis.Client
}

func NewClientStore(client *redis.Client) *ClientStore {
	return &ClientStore{client: client}
}

func (s *ClientStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get %s from Redis: %w", key, err)
	}
	return val, true, nil
}

func (s *ClientStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store %s in Redis: %w", key, err)
	}
	return nil
}

// CatalogCache memoizes candidate queries for a short TTL. A cache failure
// never fails the request; the query falls through to the catalog.
type CatalogCache struct {
	next  recommend.CatalogRepository
	store Store
	ttl   time.Duration
}

var _ recommend.CatalogRepository = (*CatalogCache)(nil)

func NewCatalogCache(next recommend.CatalogRepository, store Store, ttl time.Duration) *CatalogCache {
	return &CatalogCache{next: next, store: store, ttl: ttl}
}

func (c *CatalogCache) FindCandidates(ctx context.Context, q domain.CandidateQuery) ([]domain.Activity, error) {
	key, err := CacheKey(q)
	if err != nil {
		CacheLookupsTotal.WithLabelValues("error").Inc()
		return c.next.FindCandidates(ctx, q)
	}

	raw, ok, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		CacheLookupsTotal.WithLabelValues("error").Inc()
		logger.Warn("catalog cache read failed", "key", key, "error", err)
	case ok:
		var cached []domain.Activity
		if err := json.Unmarshal(raw, &cached); err == nil {
			CacheLookupsTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		CacheLookupsTotal.WithLabelValues("error").Inc()
		logger.Warn("catalog cache entry is corrupt", "key", key)
	default:
		CacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	rows, err := c.next.FindCandidates(ctx, q)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		logger.Warn("failed to encode catalog cache entry", "error", err)
		return rows, nil
	}
	if err := c.store.Set(ctx, key, payload, c.ttl); err != nil {
		logger.Warn("catalog cache write failed", "key", key, "error", err)
	}

	return rows, nil
}

// CacheKey is order-insensitive for the set-valued parts of the query.
func CacheKey(q domain.CandidateQuery) (string, error) {
	norm := struct {
		Duration   int      `json:"d"`
		Locations  []string `json:"l"`
		Costs      []string `json:"c"`
		ExcludeIDs []string `json:"x"`
		Limit      int      `json:"n"`
	}{
		Duration:   q.Duration,
		Locations:  sortedCopy(q.Locations),
		Costs:      sortedCopy(q.Costs),
		ExcludeIDs: sortedCopy(q.ExcludeIDs),
		Limit:      q.Limit,
	}

	b, err := json.Marshal(norm)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return keyPrefix + hex.EncodeToString(sum[:]), nil
}

// A nil input stays nil so "unrestricted" and "empty" keep distinct keys.
func sortedCopy(in []string) []string {
	if in == nil {
		return nil
	}
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}
