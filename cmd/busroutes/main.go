// Command busroutes reads the five-line stdin protocol (age groups,
// budget, and the three input file paths), runs the full
// ingest/intersector/knapsack pipeline via the driver package, and
// writes the resulting allocation to standard output.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Jachtabahn/busroutes-tokyo/config"
	"github.com/Jachtabahn/busroutes-tokyo/driver"
	"github.com/Jachtabahn/busroutes-tokyo/ingest"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a YAML configuration file (optional)")
	deadline := flag.Duration("deadline", 0, "wall-clock deadline for the knapsack forward pass (0 = none); overrides the config file")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error; overrides the config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "busroutes: loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if *deadline != 0 {
		cfg.Deadline = *deadline
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	stdinCfg, err := driver.ParseStdinConfig(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "busroutes: %v\n", err)
		return 1
	}
	stdinCfg.Workers = cfg.Workers

	ctx := context.Background()
	var cancel context.CancelFunc
	if cfg.Deadline > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Deadline)
		defer cancel()
	}

	loader := ingest.NewLoader(logger)
	if err := driver.Run(ctx, stdinCfg, loader, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "busroutes: %v\n", err)
		return 1
	}
	return 0
}
