package quota

import "context"

// Service orchestrates the monthly search allowance.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// UseSearch deducts one search from the user's monthly allowance.
// If the user row does not exist yet it is initialised and the search is
// immediately consumed. Returns ErrInsufficientSearches when the quota for
// the current month is exhausted.
func (s *Service) UseSearch(ctx context.Context, uid string) error {
	err := s.store.UseSearch(ctx, uid)
	if err != ErrInsufficientSearches {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.UseSearch(ctx, uid)
}
