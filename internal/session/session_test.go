package session

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"ripplefield/internal/config"
	"ripplefield/internal/core"
	"ripplefield/internal/driver"
	"ripplefield/internal/source"
)

func writePoints(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write points: %v", err)
	}
	return path
}

func TestNewBuildsFieldFromFile(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Source = writePoints(t, `[{"x":0,"y":0},{"x":10,"y":0},{"x":0,"y":10,"r":2}]`)
	cfg.Ripple.Seed = 7

	s, err := New(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Field().Len() != 3 {
		t.Fatalf("expected 3 points, got %d", s.Field().Len())
	}
	if s.RNGSeed() != 7 {
		t.Fatalf("explicit seed not kept: %d", s.RNGSeed())
	}
	if _, err := uuid.Parse(s.ID()); err != nil {
		t.Fatalf("session id %q is not a UUID: %v", s.ID(), err)
	}
	for i, d := range s.Field().Delays() {
		if d >= 0 || d < -cfg.Ripple.CycleSec {
			t.Fatalf("delay %d out of range: %v", i, d)
		}
	}
}

func TestNewRejectsEmptyPayload(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Source = writePoints(t, `[]`)
	if _, err := New(context.Background(), cfg, source.NewLoader()); !errors.Is(err, source.ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := New(context.Background(), config.NewConfig(), nil); !errors.Is(err, config.ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
}

func TestSameSeedGivesSameDelays(t *testing.T) {
	points := []core.Point{{X: 0, Y: 0}, {X: 4, Y: 1}, {X: 9, Y: 3}, {X: 2, Y: 8}, {X: 7, Y: 7}}
	cfg := config.NewConfig()
	cfg.Source = "memory"
	cfg.Ripple.Seed = 42

	a, err := FromPoints(cfg, points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := FromPoints(cfg, points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	da, db := a.Field().Delays(), b.Field().Delays()
	for i := range da {
		if da[i] != db[i] {
			t.Fatalf("delay %d differs: %v vs %v", i, da[i], db[i])
		}
	}
}

func TestReseedSwapsFieldAndKeepsOld(t *testing.T) {
	points := []core.Point{{X: 0, Y: 0}, {X: 4, Y: 1}, {X: 9, Y: 3}, {X: 2, Y: 8}}
	cfg := config.NewConfig()
	cfg.Source = "memory"
	cfg.Ripple.Seed = 3

	s, err := FromPoints(cfg, points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := s.Field()
	snapshot := append([]float64(nil), before.Delays()...)
	after := s.Reseed()
	if after == before || s.Field() != after {
		t.Fatal("reseed should install a new field")
	}
	for i, d := range before.Delays() {
		if d != snapshot[i] {
			t.Fatalf("old field mutated at %d", i)
		}
	}
	if after.Viewbox() != before.Viewbox() {
		t.Fatal("reseed must keep the viewbox")
	}
}

func TestNewDriverHonorsReducedMotion(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Source = "memory"
	cfg.ReducedMotion = true
	s, err := FromPoints(cfg, []core.Point{{X: 1, Y: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := s.NewDriver()
	if d.State() != driver.Paused {
		t.Fatalf("reduced motion driver should start paused, got %v", d.State())
	}
}

func TestScaledProjectionKeepsLogicalMarkerSize(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Source = "memory"
	cfg.Ripple.Seed = 3
	cfg.Ripple.TargetDotPx = 4
	s, err := FromPoints(cfg, []core.Point{{X: 0, Y: 0}, {X: 10, Y: 10}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logical := s.Projection(960, 540).MarkerPx(960)
	physical := s.ScaledProjection(1920, 1080, 2).MarkerPx(1920)
	if math.Abs(logical-4) > 1e-9 {
		t.Fatalf("logical marker = %v px, want 4", logical)
	}
	if math.Abs(physical-8) > 1e-9 {
		t.Fatalf("marker at scale 2 = %v physical px, want 8", physical)
	}
}

func TestDeviceScaleCapsAndFallsBack(t *testing.T) {
	cases := []struct{ dpr, limit, want float64 }{
		{2, 0, 2},
		{2, 1.5, 1.5},
		{1, 2, 1},
		{0, 0, 1},
		{math.NaN(), 0, 1},
	}
	for _, c := range cases {
		if got := DeviceScale(c.dpr, c.limit); got != c.want {
			t.Fatalf("DeviceScale(%v, %v) = %v, want %v", c.dpr, c.limit, got, c.want)
		}
	}
}

func TestParametersIncludeSessionGroup(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Source = "memory"
	cfg.Ripple.Seed = 9
	s, err := FromPoints(cfg, []core.Point{{X: 1, Y: 1}, {X: 2, Y: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	groups := s.Parameters().Groups
	last := groups[len(groups)-1]
	if last.Name != "Session" {
		t.Fatalf("expected Session group last, got %q", last.Name)
	}
	if last.Params[2].Value != "9" {
		t.Fatalf("rng seed param = %q", last.Params[2].Value)
	}
}
