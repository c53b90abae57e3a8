// Package source fetches point samples from a file, stdin or an HTTP URL.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"ripplefield/internal/core"
)

var (
	// ErrNoSource is returned when no location was configured.
	ErrNoSource = errors.New("no point data source configured")
	// ErrEmptyPayload is returned when the payload holds no points.
	ErrEmptyPayload = errors.New("point payload is empty")
	// ErrInvalidPoint is returned for points with non-finite coordinates or
	// a negative radius.
	ErrInvalidPoint = errors.New("invalid point")
)

// maxPayloadBytes bounds a single payload read.
const maxPayloadBytes = 256 << 20

// Loader resolves a location string into points.
type Loader struct {
	Client *http.Client
	Stdin  io.Reader
}

// NewLoader returns a Loader with a bounded HTTP client and os.Stdin.
func NewLoader() *Loader {
	return &Loader{
		Client: &http.Client{Timeout: 30 * time.Second},
		Stdin:  os.Stdin,
	}
}

// Load reads points from location: "-" for stdin, an http(s) URL, or a file
// path. The payload must be a non-empty JSON array of {x, y, r?} objects.
func (l *Loader) Load(ctx context.Context, location string) ([]core.Point, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrNoSource
	}
	var (
		points []core.Point
		err    error
	)
	switch {
	case location == "-":
		points, err = Decode(l.Stdin)
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		points, err = l.fetch(ctx, location)
	default:
		points, err = readFile(location)
	}
	if err != nil {
		return nil, fmt.Errorf("loading points from %s: %w", location, err)
	}
	core.Logger().Info("points loaded", "source", location, "count", len(points))
	return points, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]core.Point, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return Decode(resp.Body)
}

func readFile(path string) ([]core.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses and validates a JSON point array.
func Decode(r io.Reader) ([]core.Point, error) {
	var points []core.Point
	dec := json.NewDecoder(io.LimitReader(r, maxPayloadBytes))
	if err := dec.Decode(&points); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPayload
		}
		return nil, fmt.Errorf("decoding points: %w", err)
	}
	if len(points) == 0 {
		return nil, ErrEmptyPayload
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) || !finite(p.R) || p.R < 0 {
			return nil, fmt.Errorf("%w at index %d: %+v", ErrInvalidPoint, i, p)
		}
	}
	return points, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
