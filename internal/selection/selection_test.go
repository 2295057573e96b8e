package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/virtualdesk/internal/db"
	"gorm.io/gorm"
)

type stubProvider struct {
	areas map[uint][]db.Area
	errs  map[uint]error
	// started/release gate the fetch for gated city ids, to simulate a
	// slow in-flight request.
	gated   map[uint]bool
	started chan uint
	release chan struct{}
}

func (p *stubProvider) AreasForLocation(_ context.Context, locationID uint) ([]db.Area, error) {
	if p.gated != nil && p.gated[locationID] {
		p.started <- locationID
		<-p.release
	}
	if err := p.errs[locationID]; err != nil {
		return nil, err
	}
	return p.areas[locationID], nil
}

func area(id uint, name string, cityID uint, cityName string) db.Area {
	return db.Area{
		Model:      gorm.Model{ID: id},
		Name:       name,
		LocationID: cityID,
		Location:   db.Location{Model: gorm.Model{ID: cityID}, Name: cityName},
	}
}

func puneProvider() *stubProvider {
	return &stubProvider{
		areas: map[uint][]db.Area{
			1: {area(10, "Baner", 1, "Pune"), area(11, "Aundh", 1, "Pune"), area(12, "Kothrud", 1, "Pune")},
			2: {area(20, "Indiranagar", 2, "Bengaluru")},
		},
		errs: map[uint]error{},
	}
}

func TestToggleCityBuildsAreaPool(t *testing.T) {
	state := New(puneProvider())
	if err := state.ToggleCity(context.Background(), 1); err != nil {
		t.Fatalf("ToggleCity: %v", err)
	}

	snap := state.Snapshot()
	if len(snap.Pool) != 3 {
		t.Fatalf("expected 3 areas in pool, got %d", len(snap.Pool))
	}
	if len(snap.CityIDs) != 1 || snap.CityIDs[0] != 1 {
		t.Fatalf("unexpected city selection %v", snap.CityIDs)
	}
}

func TestPendingCountIsCartesianProduct(t *testing.T) {
	state := New(puneProvider())
	ctx := context.Background()
	if err := state.ToggleCity(ctx, 1); err != nil {
		t.Fatalf("ToggleCity: %v", err)
	}

	state.SelectAllAreas()
	state.TogglePurpose("GST Registration")
	state.TogglePurpose("Company Registration")

	if got := state.PendingCount(); got != 6 {
		t.Fatalf("PendingCount = %d, want 6", got)
	}

	candidates, err := state.Candidates()
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(candidates) != 6 {
		t.Fatalf("got %d candidates, want 6", len(candidates))
	}
}

func TestCandidatesShape(t *testing.T) {
	state := New(puneProvider())
	ctx := context.Background()
	if err := state.ToggleCity(ctx, 1); err != nil {
		t.Fatalf("ToggleCity: %v", err)
	}
	if err := state.ToggleArea(10); err != nil {
		t.Fatalf("ToggleArea: %v", err)
	}
	state.TogglePurpose("GST Registration")

	candidates, err := state.Candidates()
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}

	c := candidates[0]
	if c.Slug != "baner-gst-registration" {
		t.Errorf("slug = %q", c.Slug)
	}
	if c.AreaName != "Baner" || c.CityName != "Pune" || c.Purpose != "GST Registration" {
		t.Errorf("unexpected candidate identity %+v", c)
	}
	if !c.IsActive {
		t.Error("candidates should start active")
	}
	if c.OverviewContent == "" || c.BenefitsContent == "" || c.WhyUsContent == "" {
		t.Error("candidate content should be populated")
	}
}

func TestCandidatesRequiresSelection(t *testing.T) {
	state := New(puneProvider())
	ctx := context.Background()
	if err := state.ToggleCity(ctx, 1); err != nil {
		t.Fatalf("ToggleCity: %v", err)
	}

	if _, err := state.Candidates(); !errors.Is(err, ErrNothingSelected) {
		t.Fatalf("expected ErrNothingSelected, got %v", err)
	}

	state.SelectAllAreas()
	if _, err := state.Candidates(); !errors.Is(err, ErrNothingSelected) {
		t.Fatalf("areas without purposes: expected ErrNothingSelected, got %v", err)
	}
}

func TestToggleAreaRejectsUnknownArea(t *testing.T) {
	state := New(puneProvider())
	ctx := context.Background()
	if err := state.ToggleCity(ctx, 1); err != nil {
		t.Fatalf("ToggleCity: %v", err)
	}

	if err := state.ToggleArea(20); !errors.Is(err, ErrAreaNotAvailable) {
		t.Fatalf("expected ErrAreaNotAvailable, got %v", err)
	}
}

func TestDeselectingCityPrunesItsAreas(t *testing.T) {
	state := New(puneProvider())
	ctx := context.Background()
	if err := state.ToggleCity(ctx, 1); err != nil {
		t.Fatalf("ToggleCity 1: %v", err)
	}
	if err := state.ToggleCity(ctx, 2); err != nil {
		t.Fatalf("ToggleCity 2: %v", err)
	}

	state.SelectAllAreas()
	state.TogglePurpose("GST Registration")
	if got := state.PendingCount(); got != 4 {
		t.Fatalf("PendingCount = %d, want 4", got)
	}

	// Dropping Bengaluru must also drop its selected area.
	if err := state.ToggleCity(ctx, 2); err != nil {
		t.Fatalf("ToggleCity deselect: %v", err)
	}
	if got := state.PendingCount(); got != 3 {
		t.Fatalf("PendingCount after prune = %d, want 3", got)
	}

	snap := state.Snapshot()
	for _, id := range snap.AreaIDs {
		if id == 20 {
			t.Fatal("area from deselected city still selected")
		}
	}
}

func TestFetchFailureDegradesToEmptyPool(t *testing.T) {
	provider := puneProvider()
	provider.errs[2] = errors.New("upstream unavailable")

	state := New(provider)
	ctx := context.Background()
	if err := state.ToggleCity(ctx, 1); err != nil {
		t.Fatalf("ToggleCity 1: %v", err)
	}

	err := state.ToggleCity(ctx, 2)
	if err == nil {
		t.Fatal("expected aggregated fetch error")
	}

	// The failed city contributes nothing, the healthy city survives.
	snap := state.Snapshot()
	if len(snap.Pool) != 3 {
		t.Fatalf("expected 3 areas from the healthy city, got %d", len(snap.Pool))
	}
}

func TestStaleAreaFetchIsDiscarded(t *testing.T) {
	provider := puneProvider()
	provider.gated = map[uint]bool{1: true}
	provider.started = make(chan uint)
	provider.release = make(chan struct{})

	state := New(provider)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		done <- state.ToggleCity(ctx, 1)
	}()

	// Wait until the slow fetch for Pune is in flight, then deselect the
	// city again. The empty selection resolves immediately.
	<-provider.started
	provider.gated[1] = false
	if err := state.ToggleCity(ctx, 1); err != nil {
		t.Fatalf("ToggleCity deselect: %v", err)
	}

	close(provider.release)
	if err := <-done; err != nil {
		t.Fatalf("superseded toggle returned error: %v", err)
	}

	snap := state.Snapshot()
	if len(snap.Pool) != 0 {
		t.Fatalf("stale fetch overwrote newer state: pool has %d areas", len(snap.Pool))
	}
	if len(snap.CityIDs) != 0 {
		t.Fatalf("expected no selected cities, got %v", snap.CityIDs)
	}
}

func TestTogglePurposeIgnoresBlankAndDeduplicates(t *testing.T) {
	state := New(puneProvider())
	state.TogglePurpose("   ")
	state.TogglePurpose("GST Registration")
	state.TogglePurpose("GST Registration")

	snap := state.Snapshot()
	if len(snap.Purposes) != 0 {
		t.Fatalf("expected purposes to toggle off, got %v", snap.Purposes)
	}
}

func TestRegistryIsolatesSessions(t *testing.T) {
	registry := NewRegistry(puneProvider())

	first := registry.Get("session-a")
	first.TogglePurpose("GST Registration")

	second := registry.Get("session-b")
	if got := len(second.Snapshot().Purposes); got != 0 {
		t.Fatalf("sessions share state: %d purposes", got)
	}

	if registry.Get("session-a") != first {
		t.Fatal("expected the same state for the same key")
	}

	registry.Remove("session-a")
	if registry.Get("session-a") == first {
		t.Fatal("expected a fresh state after Remove")
	}
}
