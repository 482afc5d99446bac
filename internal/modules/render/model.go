// README: Content block model for parsed recommendation text.
package render

// BlockKind discriminates the structural units produced by the parser.
type BlockKind string

const (
	KindHeader     BlockKind = "header"
	KindHotelCard  BlockKind = "hotel_card"
	KindBulletList BlockKind = "bullet_list"
	KindParagraph  BlockKind = "paragraph"
)

// SpanCategory is the semantic class of an emphasized run of text.
type SpanCategory string

const (
	SpanGeneric        SpanCategory = "generic"
	SpanFlightEconomy  SpanCategory = "flight_economy"
	SpanFlightBusiness SpanCategory = "flight_business"
	SpanFlightFirst    SpanCategory = "flight_first"
	SpanAirline        SpanCategory = "airline"
)

// HotelCategory is the price tier detected on a hotel entry line.
type HotelCategory string

const (
	HotelNone     HotelCategory = ""
	HotelBudget   HotelCategory = "budget"
	HotelMidRange HotelCategory = "mid_range"
	HotelLuxury   HotelCategory = "luxury"
)

// Label returns the display badge text for the category, empty for none.
func (c HotelCategory) Label() string {
	switch c {
	case HotelBudget:
		return "Budget"
	case HotelMidRange:
		return "Mid-Range"
	case HotelLuxury:
		return "Luxury"
	default:
		return ""
	}
}

// Span is one run of text within a block. Category is set only when
// Emphasized is true.
type Span struct {
	Text       string       `json:"text"`
	Emphasized bool         `json:"emphasized,omitempty"`
	Category   SpanCategory `json:"category,omitempty"`
}

// Block is a tagged variant: Kind selects which fields are populated.
// Blocks appear in the same order as their source lines.
type Block struct {
	Kind BlockKind `json:"kind"`

	// KindHeader
	Text        string `json:"text,omitempty"`
	Highlighted bool   `json:"highlighted,omitempty"`

	// KindHotelCard
	HotelName     string        `json:"hotel_name,omitempty"`
	HotelCategory HotelCategory `json:"hotel_category,omitempty"`
	Detail        []Span        `json:"detail,omitempty"`
	Features      [][]Span      `json:"features,omitempty"`

	// KindBulletList
	Items [][]Span `json:"items,omitempty"`

	// KindParagraph
	Spans []Span `json:"spans,omitempty"`
}
