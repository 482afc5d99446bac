// README: Fixed activity pools for exploration days.
package itinerary

// poolEntry is an activity without its time-of-day slot.
type poolEntry struct {
	text     string
	icon     string
	category Category
}

// Exploration days rotate through these pools at (dayIndex-1) mod len,
// independently per slot. Pool lengths are deliberately unequal so the
// combinations drift apart across a longer stay.
var (
	morningPool = []poolEntry{
		{"Visit iconic landmarks and historical monuments", "🏛️", CategoryPlace},
		{"Explore ancient temples and religious sites", "⛩️", CategoryPlace},
		{"Museum tour - Art, culture and history exhibits", "🖼️", CategoryPlace},
		{"Morning heritage walk through old city quarters", "🚶", CategoryPlace},
	}

	afternoonPool = []poolEntry{
		{"Lunch at authentic local restaurant - Must-try regional dishes", "🍴", CategoryFood},
		{"Traditional cooking class - Learn local cuisine", "👨‍🍳", CategoryCultural},
		{"Street food tour - Sample famous local snacks", "🍜", CategoryFood},
	}

	eveningPool = []poolEntry{
		{"Cultural show - Traditional dance & music performance", "🎭", CategoryCultural},
		{"Handicraft market shopping - Local artisan products", "🎨", CategoryShopping},
		{"Sunset at scenic viewpoint with local tea/snacks", "🌅", CategoryPlace},
		{"Shopping district - Textiles, spices, and local crafts", "🛍️", CategoryShopping},
	}

	nightPool = []poolEntry{
		{"Dinner at popular local eatery - Chef specials", "🍛", CategoryFood},
		{"Night market exploration - Street food & shopping", "🌃", CategoryShopping},
		{"Evening river cruise or harbor tour with dinner", "⛴️", CategoryCultural},
	}
)

// pick indexes a pool by exploration-day offset and binds the slot.
func pick(pool []poolEntry, slot TimeOfDay, dayIdx int) Activity {
	e := pool[(dayIdx-1)%len(pool)]
	return Activity{TimeOfDay: slot, Text: e.text, Icon: e.icon, Category: e.category}
}
