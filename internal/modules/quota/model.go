package quota

import "errors"

// ErrInsufficientSearches is returned when a user has no searches remaining
// for the current month.
var ErrInsufficientSearches = errors.New("insufficient searches")

// DefaultSearches is the number of searches granted per month.
const DefaultSearches = 100
