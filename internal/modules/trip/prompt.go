// README: Prompt builder for the completion provider.
package trip

import "fmt"

// SystemInstruction is the fixed role prompt sent with every search. The
// formatting directives here drive the bold-marker contract the render
// parser depends on, so edits must stay in sync with that package.
const SystemInstruction = `You are an experienced travel agent specializing in flight and hotel recommendations for Indian travelers. CRITICAL: For flights, recommend 2-3 airlines. For EACH airline, format as follows: 1) Airline name as a header in bold, 2) Flight timings and duration, 3) List only the class names (NOT "Airline Name: Class") - use **Economy Class**, **Business Class**, **First Class** with individual prices. Example: "**Air India** - Departure: 10:30 AM, Arrival: 2:45 PM (Duration: 4h 15m) - **Economy Class** $500-$700 (₹41,000-₹58,000), **Business Class** $1,200-$1,500 (₹99,000-₹1,24,000), **First Class** $2,000-$2,500 (₹1,65,000-₹2,06,000)". Always display prices in BOTH local currency AND Indian Rupees (₹). Use current exchange rates for accurate conversions. MANDATORY: You MUST include a detailed TRAVEL TIPS section with at least 6-8 practical tips about the destination including best areas to stay, local transportation, must-visit attractions, visa requirements, best time to visit, local cuisine, and safety tips.`

// BuildPrompt renders the user prompt for a trip search. The three numbered
// sections and the pricing directives are part of the provider contract.
func BuildPrompt(q Query) string {
	nights := q.Nights()
	checkIn := q.CheckIn.Format("2006-01-02")
	checkOut := q.CheckOut.Format("2006-01-02")

	return fmt.Sprintf(`As a professional travel agent, please provide detailed travel recommendations for the following trip:

Origin: %[1]s
Destination: %[2]s
Check-in: %[3]s
Check-out: %[4]s
Duration: %[5]d %[6]s
Guests: %[7]d
Rooms: %[8]d

Please provide:

1. FLIGHT RECOMMENDATIONS (%[1]s to %[2]s):
   - Recommend 2-3 airlines operating this route
   - Flight date: %[3]s
   - For EACH airline, provide:
     * Airline name header in bold
     * Typical flight timings (departure and arrival times based on %[3]s)
     * Flight duration
     * ALL THREE classes with individual pricing (DO NOT repeat airline name with class):
       - **Economy Class** with price
       - **Business Class** with price
       - **First Class** with price
   - Approximate round-trip fares in BOTH local currency AND Indian Rupees (₹) for each class
   - Layover information if applicable
   - Best time to book for better prices

2. HOTEL RECOMMENDATIONS in %[2]s:
   - 3-5 hotel options with different price ranges (budget, mid-range, luxury)
   - For each hotel, include:
     * Hotel name and star rating
     * Category (Budget/Mid-range/Luxury) - MUST use one of these exact words in bold
     * Approximate price range per night in BOTH the local currency of %[2]s AND Indian Rupees (₹)
     * Key amenities and features
     * Location/neighborhood information
     * Why it's recommended for this trip

3. TRAVEL TIPS for visiting %[2]s:
   - Best areas to stay
   - Local transportation options
   - Must-visit attractions
   - Any visa or travel requirements for Indian travelers
   - Best time to visit
   - Local cuisine recommendations
   - Safety tips and precautions

IMPORTANT FORMATTING:
- TRAVEL TIPS section is MANDATORY - You MUST provide at least 5-7 travel tips
- Each travel tip should be a bullet point with detailed information

IMPORTANT PRICING FORMAT:
- Flights: Put airline and class in bold like **Air India: Economy Class** or **Emirates: Business Class**
- Flights: "$800-$1,200 round-trip (₹66,000-₹99,000)" or "€700-€1,000 round-trip (₹63,000-₹90,000)"
- Hotels: "$100-$150 per night (₹8,000-₹12,000)" or "€80-€120 per night (₹7,200-₹10,800)"
- Always show local currency first, then Indian Rupee equivalent in parentheses
- Use current exchange rates for accurate conversion
- Make sure Economy Class, Business Class, and First Class are always in bold with **

Format the response in a clear, readable way with proper sections and bullet points.`,
		q.Origin, q.Destination, checkIn, checkOut,
		nights, Plural(nights, "night"), q.Guests, q.Rooms)
}
