package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/pipeline"
	"github.com/lixenwraith/vi-snake/status"
)

var (
	configPath  = flag.String("config", "", "Path to YAML config file")
	producers   = flag.Int("producers", 0, "Number of producers (0 keeps config)")
	consumers   = flag.Int("consumers", 0, "Number of consumers (0 keeps config)")
	items       = flag.Int("items", 0, "Items per producer (0 keeps config)")
	capacity    = flag.Int("capacity", -1, "Queue capacity, 0 for unbounded (-1 keeps config)")
	seed        = flag.Uint64("seed", 0, "Random seed, 0 for time-based")
	showMetrics = flag.Bool("metrics", false, "Print metrics after the run")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pipeline-demo: %v\n", err)
		os.Exit(2)
	}
	if *producers > 0 {
		cfg.Pipeline.Producers = *producers
	}
	if *consumers > 0 {
		cfg.Pipeline.Consumers = *consumers
	}
	if *items > 0 {
		cfg.Pipeline.Items = *items
	}
	if *capacity >= 0 {
		cfg.Pipeline.QueueCapacity = *capacity
	}
	if *seed != 0 {
		cfg.Pipeline.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "pipeline-demo: %v\n", err)
		os.Exit(2)
	}

	session := uuid.New()
	logger := log.New(os.Stdout, fmt.Sprintf("[%s] ", session.String()[:8]), log.Ltime|log.Lmicroseconds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := status.NewRegistry()
	coordinator := pipeline.NewCoordinator(cfg.Pipeline, reg, logger)

	census, err := coordinator.Run(ctx)
	if err != nil {
		logger.Printf("pipeline failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("The buffer is empty now: %t\n", census.Empty)
	fmt.Printf("Remaining threads: %d\n", len(census.Remaining)+1)
	fmt.Println("main")
	for _, name := range census.Remaining {
		fmt.Println(name)
	}
	fmt.Printf("Produced %d, consumed %d, done %d, goroutines %d\n",
		census.Produced, census.Consumed, census.DoneCalls, census.Goroutines)

	if *showMetrics {
		if _, err := reg.WriteTo(os.Stdout); err != nil {
			logger.Printf("metrics: %v", err)
		}
	}
	fmt.Println("All threads have finished, exiting program...")
}
