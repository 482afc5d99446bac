// README: Line-oriented parser turning model output into typed blocks.
package render

import (
	"regexp"
	"strings"
)

// highlightGlyph is prefixed to highlighted section headers.
const highlightGlyph = "💡 "

var (
	hashHeaderRe = regexp.MustCompile(`^#{1,3}\s+(.+)`)
	numHeaderRe  = regexp.MustCompile(`^\d+\.\s+(.+)`)
	hotelLineRe  = regexp.MustCompile(`^\*\*(.+?)\*\*`)
	bulletLineRe = regexp.MustCompile(`^[-*•]\s+(.+)`)
	boldRunRe    = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// airlineKeywords classify an emphasized run as an airline name.
// "air " keeps its trailing space so "Airbnb" does not match.
var airlineKeywords = []string{
	"air ", "airways", "airlines", "jet", "indigo", "spicejet",
	"vistara", "lufthansa", "emirates", "qatar", "british", "american",
	"delta", "united", "etihad", "singapore", "cathay",
}

// parserState is the fold accumulator: bullets not yet flushed and the
// index of the most recent hotel card still open for feature attachment.
type parserState struct {
	pending  [][]Span
	openCard int // index into blocks, -1 when no card is open
}

// Parse converts raw recommendation text into an ordered block sequence.
// It never fails: malformed markers degrade to literal text, and empty
// input yields an empty sequence.
func Parse(text string) []Block {
	var blocks []Block
	st := parserState{openCard: -1}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			blocks = st.flush(blocks)

		case hashHeaderRe.MatchString(line) || numHeaderRe.MatchString(line):
			blocks = st.flush(blocks)
			st.openCard = -1
			blocks = append(blocks, headerBlock(line))

		case hotelLineRe.MatchString(line):
			blocks = st.flush(blocks)
			blocks = append(blocks, hotelBlock(line))
			st.openCard = len(blocks) - 1

		case bulletLineRe.MatchString(line):
			m := bulletLineRe.FindStringSubmatch(line)
			st.pending = append(st.pending, ParseSpans(m[1]))

		default:
			blocks = st.flush(blocks)
			blocks = append(blocks, Block{Kind: KindParagraph, Spans: ParseSpans(line)})
		}
	}

	return st.flush(blocks)
}

// flush moves pending bullets into the open hotel card's feature list, or
// appends them as a standalone bullet list. The open card stays open.
func (st *parserState) flush(blocks []Block) []Block {
	if len(st.pending) == 0 {
		return blocks
	}
	if st.openCard >= 0 {
		card := &blocks[st.openCard]
		card.Features = append(card.Features, st.pending...)
	} else {
		blocks = append(blocks, Block{Kind: KindBulletList, Items: st.pending})
	}
	st.pending = nil
	return blocks
}

func headerBlock(line string) Block {
	text := line
	if m := hashHeaderRe.FindStringSubmatch(line); m != nil {
		text = m[1]
	} else if m := numHeaderRe.FindStringSubmatch(line); m != nil {
		text = m[1]
	}
	text = strings.TrimSpace(strings.ReplaceAll(text, "**", ""))

	highlighted := strings.Contains(strings.ToLower(text), "travel tips")
	if highlighted {
		text = highlightGlyph + text
	}
	return Block{Kind: KindHeader, Text: text, Highlighted: highlighted}
}

func hotelBlock(line string) Block {
	m := hotelLineRe.FindStringSubmatch(line)
	name := m[1]
	rest := strings.TrimSpace(line[len(m[0]):])

	b := Block{
		Kind:          KindHotelCard,
		HotelName:     name,
		HotelCategory: hotelCategory(line),
	}
	if rest != "" {
		b.Detail = ParseSpans(rest)
	}
	return b
}

// hotelCategory searches the whole entry line, first match wins.
func hotelCategory(line string) HotelCategory {
	l := strings.ToLower(line)
	switch {
	case strings.Contains(l, "budget"):
		return HotelBudget
	case strings.Contains(l, "mid-range"), strings.Contains(l, "midrange"), strings.Contains(l, "mid range"):
		return HotelMidRange
	case strings.Contains(l, "luxury"), strings.Contains(l, "premium"):
		return HotelLuxury
	default:
		return HotelNone
	}
}

// ParseSpans splits text on non-overlapping **...** runs. Text without any
// closed run comes back as a single plain span, so an unclosed marker is
// kept literally.
func ParseSpans(text string) []Span {
	matches := boldRunRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Text: text}}
	}

	var spans []Span
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, Span{Text: text[last:m[0]]})
		}
		inner := text[m[2]:m[3]]
		spans = append(spans, Span{Text: inner, Emphasized: true, Category: classifySpan(inner)})
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Text: text[last:]})
	}
	return spans
}

func classifySpan(text string) SpanCategory {
	l := strings.ToLower(text)
	switch {
	case strings.Contains(l, "economy"):
		return SpanFlightEconomy
	case strings.Contains(l, "business"):
		return SpanFlightBusiness
	case strings.Contains(l, "first class"), strings.Contains(l, "first-class"):
		return SpanFlightFirst
	}
	for _, kw := range airlineKeywords {
		if strings.Contains(l, kw) {
			return SpanAirline
		}
	}
	return SpanGeneric
}
