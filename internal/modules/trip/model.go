// README: Trip query value object, validation, and night-count rules.
package trip

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalid wraps all query validation failures.
var ErrInvalid = errors.New("invalid trip query")

// Query is one immutable trip search request.
type Query struct {
	Origin      string
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	Rooms       int
}

// Validate enforces the caller-side preconditions, including the
// check-out-after-check-in ordering. The rest of the system stays tolerant
// of reversed ranges (see Nights), so this is the only gate.
func (q Query) Validate() error {
	switch {
	case q.Origin == "":
		return fmt.Errorf("%w: origin is required", ErrInvalid)
	case q.Destination == "":
		return fmt.Errorf("%w: destination is required", ErrInvalid)
	case q.CheckIn.IsZero():
		return fmt.Errorf("%w: check-in date is required", ErrInvalid)
	case q.CheckOut.IsZero():
		return fmt.Errorf("%w: check-out date is required", ErrInvalid)
	case q.CheckOut.Before(q.CheckIn):
		return fmt.Errorf("%w: check-out must not be before check-in", ErrInvalid)
	case q.Guests < 1:
		return fmt.Errorf("%w: guests must be at least 1", ErrInvalid)
	case q.Rooms < 1:
		return fmt.Errorf("%w: rooms must be at least 1", ErrInvalid)
	}
	return nil
}

// Nights is ceil(|checkOut - checkIn|) in days. The absolute value means a
// reversed range still yields a positive count; Validate rejects such input
// at the boundary, but library callers get the historical behaviour.
func (q Query) Nights() int {
	diff := q.CheckOut.Sub(q.CheckIn)
	return int(math.Ceil(math.Abs(diff.Hours()) / 24))
}

// FormatLong renders a date as "Monday, January 2, 2006".
func FormatLong(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatShort renders a date as "Mon, Jan 2, 2006".
func FormatShort(t time.Time) string {
	return t.Format("Mon, Jan 2, 2006")
}

// Plural appends "s" to unit when n is not exactly 1.
func Plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
