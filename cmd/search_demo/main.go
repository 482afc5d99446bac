// README: CLI demo; runs one hotel search against the live provider and prints the parsed blocks.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"tripdeck/internal/ai"
	"tripdeck/internal/modules/render"
	"tripdeck/internal/modules/search"
	"tripdeck/internal/modules/trip"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	checkIn := time.Now().AddDate(0, 1, 0)
	q := trip.Query{
		Origin:      "Mumbai",
		Destination: "Paris",
		CheckIn:     checkIn,
		CheckOut:    checkIn.AddDate(0, 0, 3),
		Guests:      2,
		Rooms:       1,
	}

	svc := search.NewService(provider, nil, nil)
	res, err := svc.Search(ctx, "demo", q)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	fmt.Printf("Trip: %s -> %s, %s to %s (%d nights)\n\n",
		res.Summary.Origin, res.Summary.Destination,
		res.Summary.CheckIn, res.Summary.CheckOut, res.Summary.Nights)

	for _, b := range res.Blocks {
		printBlock(b)
	}
}

func printBlock(b render.Block) {
	switch b.Kind {
	case render.KindHeader:
		fmt.Printf("== %s ==\n", b.Text)
	case render.KindHotelCard:
		fmt.Printf("* %s", b.HotelName)
		if b.HotelCategory != "" {
			fmt.Printf(" [%s]", b.HotelCategory.Label())
		}
		fmt.Println()
		for _, feature := range b.Features {
			fmt.Printf("  - %s\n", spanText(feature))
		}
	case render.KindBulletList:
		for _, item := range b.Items {
			fmt.Printf("- %s\n", spanText(item))
		}
	case render.KindParagraph:
		fmt.Println(spanText(b.Spans))
	}
}

func spanText(spans []render.Span) string {
	var out string
	for _, s := range spans {
		out += s.Text
	}
	return out
}
