package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"jobboard/internal/domain/job"
)

const listingCachePrefix = "jobs:list:"

// ListingCache is the slice of the cache the jobs usecase needs. Mutations
// purge every listing key by prefix so subsequent reads reflect new records.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type listingCacheKeyInput struct {
	Search    string `json:"search"`
	Location  string `json:"location"`
	Type      string `json:"type"`
	SalaryMin *int64 `json:"salary_min"`
}

func listingCacheKey(f job.Filter) string {
	in := listingCacheKeyInput{
		Search:    normalizeCacheValue(f.Search),
		Location:  normalizeCacheValue(f.Location),
		SalaryMin: f.SalaryMin,
	}
	if f.Type != nil {
		in.Type = string(*f.Type)
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return listingCachePrefix + hex.EncodeToString(sum[:])
}

func normalizeCacheValue(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
