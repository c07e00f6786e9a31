package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/plus3/blockroyale/config"
	"github.com/plus3/blockroyale/match"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Config file to load instead of the XDG config.")
	timeout := flag.Duration("timeout", time.Minute, "Wall clock limit for the whole run.")
	matches := flag.Int("matches", 1, "Number of matches to play back to back.")
	ais := flag.Int("ais", 15, "Number of AI competitors per match.")
	opponents := flag.String("opponents", "", "Comma separated difficulty mix. Empty keeps the configured mix.")
	tick := flag.Duration("tick", time.Second/60, "Simulated duration of one tick.")
	seed := flag.Uint64("seed", 0, "Seed of the first match; later matches use seed+i. Zero is random.")
	verbose := flag.Bool("v", false, "Log match events.")
	flag.Parse()

	log.Println("Starting royale benchmark...")

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Human = false
	cfg.AIs = *ais
	if *opponents != "" {
		cfg.Opponents = strings.Split(*opponents, ",")
	}

	logger := zap.NewNop()
	if *verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
	}
	defer logger.Sync()

	report := &Report{
		Timeout:   *timeout,
		Tick:      *tick,
		AIs:       *ais,
		Opponents: strings.Join(cfg.Opponents, ","),
		TickTime:  Stats{Samples: make([]time.Duration, 0)},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	startTime := time.Now()
	for i := 0; i < *matches && ctx.Err() == nil; i++ {
		if *seed != 0 {
			cfg.Seed = *seed + uint64(i)
		}
		mc, err := cfg.MatchConfig()
		if err != nil {
			log.Fatalf("Invalid settings: %v", err)
		}
		m, err := match.New(mc, match.WithLogger(logger))
		if err != nil {
			log.Fatalf("Failed to create match: %v", err)
		}

		log.Printf("Playing match %d/%d (seed %d)...\n", i+1, *matches, m.Seed())
		result := play(ctx, m, *tick, &report.TickTime)
		report.Matches = append(report.Matches, result)
	}
	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Benchmark finished.")

	fmt.Println("\n\n--- Royale Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// play ticks m as fast as possible until it ends or ctx expires.
func play(ctx context.Context, m *match.Match, tick time.Duration, ticks *Stats) MatchResult {
	start := time.Now()
Loop:
	for !m.Over() {
		select {
		case <-ctx.Done():
			break Loop
		default:
			tickStart := time.Now()
			m.Once(tick)
			ticks.Samples = append(ticks.Samples, time.Since(tickStart))
		}
	}
	return newMatchResult(m, time.Since(start))
}
