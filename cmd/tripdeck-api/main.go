// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tripdeck/internal/ai"
	"tripdeck/internal/config"
	httptransport "tripdeck/internal/http"
	"tripdeck/internal/infra"
	"tripdeck/internal/modules/itinerary"
	"tripdeck/internal/modules/quota"
	"tripdeck/internal/modules/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		log.Fatalf("ai provider init: %v", err)
	}
	defer provider.Close()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	quotaSvc := quota.NewService(quota.NewStore(dbPool))
	resultCache := search.NewCache(redisClient, cfg.Cache.TTL)
	searchSvc := search.NewService(provider, quotaSvc, resultCache)
	itinerarySvc := itinerary.NewService(itinerary.WithDelay(cfg.Itinerary.Delay))

	handler := httptransport.NewRouter(searchSvc, itinerarySvc)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func newProvider(ctx context.Context, cfg config.Config) (ai.Provider, error) {
	if cfg.AI.Provider == "openai" {
		return ai.NewOpenAIProvider(cfg.AI.OpenAIKey)
	}
	return ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
}
