// README: Hotel search orchestration over quota, cache, provider and parser.
package search

import (
	"context"
	"log"

	"tripdeck/internal/ai"
	"tripdeck/internal/modules/render"
	"tripdeck/internal/modules/trip"
)

// Completer is the slice of the AI provider the search flow needs.
type Completer interface {
	Complete(ctx context.Context, req ai.Request) (string, error)
}

// QuotaGate deducts one search from a user's monthly allowance.
type QuotaGate interface {
	UseSearch(ctx context.Context, uid string) error
}

// ResultCache stores parsed results keyed by query.
type ResultCache interface {
	Get(ctx context.Context, q trip.Query) (*Result, error)
	Set(ctx context.Context, q trip.Query, res *Result) error
}

// Service runs hotel searches end to end. Quota and cache are optional;
// a nil quota means unmetered access and a nil cache disables caching.
type Service struct {
	provider Completer
	quota    QuotaGate
	cache    ResultCache
}

// NewService creates a search Service.
func NewService(provider Completer, quota QuotaGate, cache ResultCache) *Service {
	return &Service{provider: provider, quota: quota, cache: cache}
}

// Search validates the query, charges the user's quota, and returns the
// parsed recommendations. Cached results are served without touching the
// provider but still consume quota. Provider failures come back as
// *ProviderError.
func (s *Service) Search(ctx context.Context, uid string, q trip.Query) (*Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if s.quota != nil {
		if err := s.quota.UseSearch(ctx, uid); err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, q)
		if err != nil {
			log.Printf("search cache get failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	text, err := s.provider.Complete(ctx, ai.Request{
		System: trip.SystemInstruction,
		Prompt: trip.BuildPrompt(q),
	})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	res := &Result{
		Summary: NewSummary(q),
		RawText: text,
		Blocks:  render.Parse(text),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, q, res); err != nil {
			log.Printf("search cache set failed: %v", err)
		}
	}

	return res, nil
}
