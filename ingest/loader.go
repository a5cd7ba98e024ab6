package ingest

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/Jachtabahn/busroutes-tokyo/model"
)

// Loader is the concrete driver.Ingester implementation: it reads real
// files from disk (transparently decompressing .gz) and logs a content
// fingerprint for each one it opens.
type Loader struct {
	logger *slog.Logger
}

// NewLoader returns a Loader that logs file fingerprints to logger. A
// nil logger disables fingerprint logging.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

func (l *Loader) logFingerprint(path string, data []byte) {
	if l.logger == nil {
		return
	}
	l.logger.Debug("ingested file", "path", path, "bytes", len(data), "fingerprint", Fingerprint(data))
}

func (l *Loader) readAll(path string) ([]byte, error) {
	rc, err := openMaybeGzip(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading %s: %w", path, err)
	}
	l.logFingerprint(path, data)
	return data, nil
}

// LoadRegions reads the activity-factors CSV and the regions file,
// filtering demographics to ageGroups.
func (l *Loader) LoadRegions(regionsPath, activityCSVPath, ageGroups string) ([]*model.Region, error) {
	activityData, err := l.readAll(activityCSVPath)
	if err != nil {
		return nil, err
	}
	factors, err := ParseActivityCSV(bytes.NewReader(activityData))
	if err != nil {
		return nil, err
	}

	regionsData, err := l.readAll(regionsPath)
	if err != nil {
		return nil, err
	}
	return ParseRegionsReader(bytes.NewReader(regionsData), ageGroups, factors)
}

// LoadRoutes reads the routes file.
func (l *Loader) LoadRoutes(routesPath string) ([]*model.Route, error) {
	data, err := l.readAll(routesPath)
	if err != nil {
		return nil, err
	}
	return ParseRoutesReader(bytes.NewReader(data))
}

// WriteAllocation delegates to the package-level WriteAllocation.
func (l *Loader) WriteAllocation(w io.Writer, allocation map[string]int) error {
	return WriteAllocation(w, allocation)
}
