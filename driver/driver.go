package driver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jachtabahn/busroutes-tokyo/intersector"
	"github.com/Jachtabahn/busroutes-tokyo/knapsack"
	"github.com/Jachtabahn/busroutes-tokyo/model"
)

// Config is the fully parsed stdin protocol: age-group filter, budget,
// and the three input file paths.
type Config struct {
	AgeGroups   string // comma-joined single-character tokens, e.g. "1,2,3"
	Budget      float64
	RegionsPath string
	RoutesPath  string
	ActivityCSV string

	// Workers is the intersector worker count, layered in from the
	// ambient config.Config rather than the stdin protocol; <= 1 runs
	// the sequential intersector.Run path.
	Workers int
}

// ParseStdinConfig reads the five-line configuration protocol:
//  1. comma-separated single-character age-group tokens
//  2. budget (positive decimal)
//  3. path to the regions file
//  4. path to the routes file
//  5. path to the activity-factors CSV
func ParseStdinConfig(r io.Reader) (Config, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() && len(lines) < 5 {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Config{}, fmt.Errorf("driver: reading stdin: %w", err)
	}
	if len(lines) < 5 {
		return Config{}, fmt.Errorf("%w: expected 5 lines, got %d", ErrMalformedConfig, len(lines))
	}

	ageTokens := strings.Split(lines[0], ",")
	for i, tok := range ageTokens {
		ageTokens[i] = strings.TrimSpace(tok)
		if len(ageTokens[i]) != 1 {
			return Config{}, fmt.Errorf("%w: token %q: %v", ErrInvalidAgeGroup, ageTokens[i], ErrMalformedConfig)
		}
	}

	budget, err := strconv.ParseFloat(strings.TrimSpace(lines[1]), 64)
	if err != nil || budget <= 0 {
		return Config{}, fmt.Errorf("%w: budget line %q: %v", ErrMalformedConfig, lines[1], err)
	}

	return Config{
		AgeGroups:   strings.Join(ageTokens, ","),
		Budget:      budget,
		RegionsPath: strings.TrimSpace(lines[2]),
		RoutesPath:  strings.TrimSpace(lines[3]),
		ActivityCSV: strings.TrimSpace(lines[4]),
	}, nil
}

// Ingester is the set of collaborators Run needs to turn a Config into
// in-memory Regions and Routes, and to emit the final allocation. The
// ingest package provides the concrete GeoJSON-like/CSV implementation;
// Run depends only on this interface so it stays testable without real
// files.
type Ingester interface {
	LoadRegions(regionsPath, activityCSVPath, ageGroups string) ([]*model.Region, error)
	LoadRoutes(routesPath string) ([]*model.Route, error)
	WriteAllocation(w io.Writer, allocation map[string]int) error
}

// Run sequences one optimization pass: ingest, intersect, solve, emit.
// It computes no business logic of its own — every decision is made by
// intersector.Run and knapsack.Solve — and logs a correlation id on
// every line so a single run's log output can be grepped out of a
// shared log stream.
func Run(ctx context.Context, cfg Config, in Ingester, stdout io.Writer, logger *slog.Logger) error {
	runID := uuid.New().String()
	log := logger.With("run_id", runID)
	start := time.Now()

	log.Info("run starting", "budget", cfg.Budget, "ages", cfg.AgeGroups)

	regions, err := in.LoadRegions(cfg.RegionsPath, cfg.ActivityCSV, cfg.AgeGroups)
	if err != nil {
		log.Error("ingest regions failed", "err", err)
		return fmt.Errorf("driver: loading regions: %w", err)
	}
	if len(regions) == 0 {
		log.Error("ingest regions failed", "err", ErrNoRegions)
		return ErrNoRegions
	}

	routes, err := in.LoadRoutes(cfg.RoutesPath)
	if err != nil {
		log.Error("ingest routes failed", "err", err)
		return fmt.Errorf("driver: loading routes: %w", err)
	}
	if len(routes) == 0 {
		log.Error("ingest routes failed", "err", ErrNoRoutes)
		return ErrNoRoutes
	}

	for _, route := range routes {
		if err := route.Validate(); err != nil {
			log.Error("route validation failed", "route", route.OutputID, "err", err)
			return fmt.Errorf("driver: route %s: %w", route.OutputID, err)
		}
	}
	for _, region := range regions {
		if err := region.Validate(); err != nil {
			log.Error("region validation failed", "region", region.MeshID, "err", err)
			return fmt.Errorf("driver: region %s: %w", region.MeshID, err)
		}
	}

	if cfg.Workers > 1 {
		if err := intersector.RunConcurrent(routes, regions, cfg.Workers); err != nil {
			log.Error("intersector failed", "err", err, "workers", cfg.Workers)
			return fmt.Errorf("driver: intersector: %w", err)
		}
	} else if err := intersector.Run(routes, regions); err != nil {
		log.Error("intersector failed", "err", err)
		return fmt.Errorf("driver: intersector: %w", err)
	}

	allocation, benefit, err := knapsack.Solve(routes, cfg.Budget, knapsack.WithContext(ctx))
	if err != nil {
		log.Error("knapsack failed", "err", err)
		return fmt.Errorf("driver: knapsack: %w", err)
	}

	if err := in.WriteAllocation(stdout, allocation); err != nil {
		log.Error("writing allocation failed", "err", err)
		return fmt.Errorf("driver: writing allocation: %w", err)
	}

	log.Info("run complete",
		"elapsed", time.Since(start).String(),
		"benefit", benefit,
		"routes_purchased", len(allocation),
	)
	return nil
}
