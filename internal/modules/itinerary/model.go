// README: Day plan and activity model for generated itineraries.
package itinerary

// TimeOfDay slots every day into four fixed segments.
type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
	Night     TimeOfDay = "Night"
)

// Category groups activities for badges and filtering.
type Category string

const (
	CategoryTravel   Category = "travel"
	CategoryHotel    Category = "hotel"
	CategoryFood     Category = "food"
	CategoryShopping Category = "shopping"
	CategoryPlace    Category = "place"
	CategoryCultural Category = "cultural"
)

// Activity is one scheduled entry within a day.
type Activity struct {
	TimeOfDay TimeOfDay `json:"time"`
	Text      string    `json:"activity"`
	Icon      string    `json:"icon"`
	Category  Category  `json:"type"`
}

// DayPlan covers one calendar day of the trip. Day numbers start at 1 and
// plans carry no identity beyond their position in one generation.
type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}
