// README: Search result model and provider error type.
package search

import (
	"fmt"
	"strings"

	"tripdeck/internal/modules/render"
	"tripdeck/internal/modules/trip"
)

// FallbackMessage is shown when the AI provider fails without a usable
// error message of its own.
const FallbackMessage = "Failed to get hotel recommendations. Please check your API key and try again."

// Summary restates the searched trip in display form.
type Summary struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Nights      int    `json:"nights"`
	Guests      string `json:"guests"`
	Rooms       string `json:"rooms"`
}

// NewSummary builds the display summary for a validated query.
func NewSummary(q trip.Query) Summary {
	return Summary{
		Origin:      q.Origin,
		Destination: q.Destination,
		CheckIn:     trip.FormatShort(q.CheckIn),
		CheckOut:    trip.FormatShort(q.CheckOut),
		Nights:      q.Nights(),
		Guests:      fmt.Sprintf("%d %s", q.Guests, trip.Plural(q.Guests, "Guest")),
		Rooms:       fmt.Sprintf("%d %s", q.Rooms, trip.Plural(q.Rooms, "Room")),
	}
}

// Result is the full outcome of a hotel search: the trip summary, the raw
// provider text and its parsed block form.
type Result struct {
	Summary Summary        `json:"summary"`
	RawText string         `json:"raw_text"`
	Blocks  []render.Block `json:"blocks"`
}

// ProviderError wraps a failure from the AI provider. The provider's own
// message is preserved when it has one so the caller can surface it.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Message returns the text to show the user: the provider's message when
// present, otherwise FallbackMessage.
func (e *ProviderError) Message() string {
	if e.Err == nil || strings.TrimSpace(e.Err.Error()) == "" {
		return FallbackMessage
	}
	return e.Err.Error()
}
