// README: Itinerary generator with template days and pool rotation.
package itinerary

import (
	"context"
	"fmt"
	"time"

	"tripdeck/internal/modules/trip"
)

// DefaultDelay is the simulated generation latency used by the API.
const DefaultDelay = 1500 * time.Millisecond

// Service produces day plans for a trip query. Output is a pure function
// of the query; the configurable delay only simulates generation latency.
type Service struct {
	delay time.Duration
}

type Option func(*Service)

// WithDelay overrides the simulated generation latency. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

func NewService(opts ...Option) *Service {
	s := &Service{delay: DefaultDelay}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns plans for day 1 through day nights+1. It only fails when
// the context is cancelled during the simulated delay.
func (s *Service) Generate(ctx context.Context, q trip.Query) ([]DayPlan, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return buildDays(q), nil
}

func buildDays(q trip.Query) []DayPlan {
	nights := q.Nights()
	days := make([]DayPlan, 0, nights+1)

	for i := 0; i <= nights; i++ {
		date := q.CheckIn.AddDate(0, 0, i)

		var plan DayPlan
		switch {
		case i == 0:
			// Arrival wins over departure on a same-day trip.
			plan = arrivalDay(q, i, date)
		case i == nights:
			plan = departureDay(q, i, date)
		default:
			plan = explorationDay(q, i, date)
		}
		days = append(days, plan)
	}
	return days
}

func arrivalDay(q trip.Query, i int, date time.Time) DayPlan {
	return DayPlan{
		Day:   i + 1,
		Date:  trip.FormatLong(date),
		Title: fmt.Sprintf("Day %d: Arrival in %s", i+1, q.Destination),
		Activities: []Activity{
			{Morning, fmt.Sprintf("Depart from %s", q.Origin), "✈️", CategoryTravel},
			{Afternoon, fmt.Sprintf("Arrive at %s & Check-in to hotel", q.Destination), "🏨", CategoryHotel},
			{Evening, "Local snacks tasting - Try street food at popular market", "🥘", CategoryFood},
			{Night, "Welcome dinner at rooftop restaurant with city views", "🍽️", CategoryFood},
		},
	}
}

func departureDay(q trip.Query, i int, date time.Time) DayPlan {
	return DayPlan{
		Day:   i + 1,
		Date:  trip.FormatLong(date),
		Title: fmt.Sprintf("Day %d: Departure Day", i+1),
		Activities: []Activity{
			{Morning, "Hotel check-out & breakfast at local cafe", "☕", CategoryFood},
			{Afternoon, "Last-minute shopping at central market for souvenirs", "🛍️", CategoryShopping},
			{Evening, fmt.Sprintf("Head to airport - Depart from %s", q.Destination), "✈️", CategoryTravel},
			{Night, fmt.Sprintf("Arrive back in %s", q.Origin), "🏠", CategoryTravel},
		},
	}
}

func explorationDay(q trip.Query, i int, date time.Time) DayPlan {
	return DayPlan{
		Day:   i + 1,
		Date:  trip.FormatLong(date),
		Title: fmt.Sprintf("Day %d: Explore %s", i+1, q.Destination),
		Activities: []Activity{
			pick(morningPool, Morning, i),
			pick(afternoonPool, Afternoon, i),
			pick(eveningPool, Evening, i),
			pick(nightPool, Night, i),
		},
	}
}
