// README: Generator tests for day templates, rotation, and determinism.
package itinerary

import (
	"context"
	"reflect"
	"testing"
	"time"

	"tripdeck/internal/modules/trip"
)

func query(checkIn, checkOut time.Time) trip.Query {
	return trip.Query{
		Origin:      "Delhi",
		Destination: "Tokyo",
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      2,
		Rooms:       1,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func generate(t *testing.T, q trip.Query) []DayPlan {
	t.Helper()
	days, err := NewService(WithDelay(0)).Generate(context.Background(), q)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return days
}

func TestGenerateThreeNightTrip(t *testing.T) {
	days := generate(t, query(date(2024, 1, 1), date(2024, 1, 4)))

	if len(days) != 4 {
		t.Fatalf("expected 4 day plans, got %d", len(days))
	}

	if days[0].Title != "Day 1: Arrival in Tokyo" {
		t.Errorf("day 1 title = %q", days[0].Title)
	}
	if days[0].Activities[0].Text != "Depart from Delhi" {
		t.Errorf("day 1 morning = %+v", days[0].Activities[0])
	}
	if days[0].Activities[1].Category != CategoryHotel {
		t.Errorf("day 1 afternoon category = %q", days[0].Activities[1].Category)
	}

	if days[3].Title != "Day 4: Departure Day" {
		t.Errorf("day 4 title = %q", days[3].Title)
	}
	if days[3].Activities[3].Text != "Arrive back in Delhi" {
		t.Errorf("day 4 night = %+v", days[3].Activities[3])
	}

	// Days 2 and 3 are exploration days on pool indexes 0 and 1.
	if days[1].Title != "Day 2: Explore Tokyo" {
		t.Errorf("day 2 title = %q", days[1].Title)
	}
	if days[1].Activities[0].Text != morningPool[0].text {
		t.Errorf("day 2 morning = %q, want pool entry 0", days[1].Activities[0].Text)
	}
	if days[2].Activities[0].Text != morningPool[1].text {
		t.Errorf("day 3 morning = %q, want pool entry 1", days[2].Activities[0].Text)
	}

	for i, d := range days {
		if d.Day != i+1 {
			t.Errorf("day number = %d, want %d", d.Day, i+1)
		}
		if len(d.Activities) != 4 {
			t.Errorf("day %d has %d activities, want 4", d.Day, len(d.Activities))
		}
	}
}

func TestGenerateDates(t *testing.T) {
	days := generate(t, query(date(2024, 1, 1), date(2024, 1, 3)))
	want := []string{
		"Monday, January 1, 2024",
		"Tuesday, January 2, 2024",
		"Wednesday, January 3, 2024",
	}
	for i, w := range want {
		if days[i].Date != w {
			t.Errorf("day %d date = %q, want %q", i+1, days[i].Date, w)
		}
	}
}

// A same-day trip produces a single arrival-template day: the arrival
// branch is checked before the departure branch, so no departure day
// appears when nights is zero.
func TestGenerateSameDayTrip(t *testing.T) {
	days := generate(t, query(date(2024, 1, 1), date(2024, 1, 1)))
	if len(days) != 1 {
		t.Fatalf("expected 1 day plan, got %d", len(days))
	}
	if days[0].Title != "Day 1: Arrival in Tokyo" {
		t.Errorf("title = %q, want arrival template", days[0].Title)
	}
}

// Pool rotation is periodic per pool size: exploration day offsets that
// differ by the pool length pick the same entry.
func TestPoolRotationPeriodicity(t *testing.T) {
	// nights=6 gives exploration day indexes 1..5; the morning pool has 4
	// entries, so index 5 wraps back to index 1's pick.
	days := generate(t, query(date(2024, 1, 1), date(2024, 1, 7)))
	if len(days) != 7 {
		t.Fatalf("expected 7 day plans, got %d", len(days))
	}

	first := days[1].Activities[0]
	wrapped := days[5].Activities[0]
	if first.Text != wrapped.Text {
		t.Errorf("morning pool did not wrap: %q vs %q", first.Text, wrapped.Text)
	}

	// Unequal pool sizes drift: the night pool (3 entries) differs between
	// those same two days.
	if days[1].Activities[3].Text == days[5].Activities[3].Text {
		t.Error("night pool should have drifted between days 2 and 6")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	q := query(date(2024, 1, 1), date(2024, 1, 5))
	a := generate(t, q)
	b := generate(t, q)
	if !reflect.DeepEqual(a, b) {
		t.Error("two generations for the same query differ")
	}
}

// Reversed dates keep the absolute-difference night count rather than
// failing; the generator itself never rejects input.
func TestGenerateReversedDates(t *testing.T) {
	days := generate(t, query(date(2024, 1, 4), date(2024, 1, 1)))
	if len(days) != 4 {
		t.Fatalf("expected 4 day plans for reversed range, got %d", len(days))
	}
}

func TestGenerateHonoursContextDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(WithDelay(time.Minute)).Generate(ctx, query(date(2024, 1, 1), date(2024, 1, 2)))
	if err == nil {
		t.Fatal("expected context error, got nil")
	}
}

func TestDefaultDelayConfigured(t *testing.T) {
	if NewService().delay != DefaultDelay {
		t.Errorf("default delay = %v, want %v", NewService().delay, DefaultDelay)
	}
}
