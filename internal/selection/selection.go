// Package selection models the operator's multi-select workflow on the
// bulk generation screen: which cities, areas and purposes are chosen,
// the area pool derived from the chosen cities, and the candidate pages
// the current selection would produce.
package selection

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/virtualdesk/internal/content"
	"github.com/virtualdesk/internal/db"
)

var (
	// ErrNothingSelected is returned when generation is attempted with
	// no selected areas or no selected purposes.
	ErrNothingSelected = errors.New("select at least one area and one purpose")
	// ErrAreaNotAvailable is returned for an area id outside the pool
	// derived from the currently selected cities.
	ErrAreaNotAvailable = errors.New("area does not belong to a selected city")
)

// AreaProvider supplies the areas of a city, with their Location
// association populated.
type AreaProvider interface {
	AreasForLocation(ctx context.Context, locationID uint) ([]db.Area, error)
}

// State is one operator's selection. Area-pool refreshes carry a
// generation token so a refresh that was superseded by a later city
// toggle is discarded instead of overwriting newer state. Deselecting a
// city prunes selected areas that fall out of the pool, so the pending
// count never includes areas the operator can no longer see.
type State struct {
	mu         sync.Mutex
	provider   AreaProvider
	cityIDs    []uint
	areaIDs    map[uint]bool
	purposes   []string
	pool       []db.Area
	generation uint64
}

// New returns an empty selection backed by the given area provider.
func New(provider AreaProvider) *State {
	return &State{
		provider: provider,
		areaIDs:  make(map[uint]bool),
	}
}

// ToggleCity flips a city's membership and refreshes the derived area
// pool. The returned error aggregates per-city fetch failures; failed
// cities simply contribute no areas.
func (s *State) ToggleCity(ctx context.Context, id uint) error {
	s.mu.Lock()
	s.toggleCityLocked(id)
	s.generation++
	generation := s.generation
	cities := append([]uint(nil), s.cityIDs...)
	s.mu.Unlock()

	return s.refreshPool(ctx, generation, cities)
}

// RefreshAreas re-fetches the pool for the current city selection, the
// retry path after a degraded fetch.
func (s *State) RefreshAreas(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	cities := append([]uint(nil), s.cityIDs...)
	s.mu.Unlock()

	return s.refreshPool(ctx, generation, cities)
}

func (s *State) toggleCityLocked(id uint) {
	for i, existing := range s.cityIDs {
		if existing == id {
			s.cityIDs = append(s.cityIDs[:i], s.cityIDs[i+1:]...)
			return
		}
	}
	s.cityIDs = append(s.cityIDs, id)
}

// refreshPool fetches areas for the given city snapshot and applies the
// result only if no later toggle has bumped the generation since.
func (s *State) refreshPool(ctx context.Context, generation uint64, cities []uint) error {
	var (
		pool      []db.Area
		fetchErrs []error
	)
	for _, cityID := range cities {
		areas, err := s.provider.AreasForLocation(ctx, cityID)
		if err != nil {
			fetchErrs = append(fetchErrs, err)
			continue
		}
		pool = append(pool, areas...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		// A later toggle owns the pool now; drop this result.
		return nil
	}

	s.pool = pool
	s.pruneAreasLocked()
	return errors.Join(fetchErrs...)
}

func (s *State) pruneAreasLocked() {
	available := make(map[uint]bool, len(s.pool))
	for _, area := range s.pool {
		available[area.ID] = true
	}
	for id := range s.areaIDs {
		if !available[id] {
			delete(s.areaIDs, id)
		}
	}
}

// ToggleArea flips an area's membership. Only areas in the current pool
// can be selected.
func (s *State) ToggleArea(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.areaIDs[id] {
		delete(s.areaIDs, id)
		return nil
	}
	for _, area := range s.pool {
		if area.ID == id {
			s.areaIDs[id] = true
			return nil
		}
	}
	return ErrAreaNotAvailable
}

// TogglePurpose flips a purpose's membership, preserving selection
// order. Blank purposes are ignored so empty strings can never reach the
// template engine.
func (s *State) TogglePurpose(purpose string) {
	trimmed := strings.TrimSpace(purpose)
	if trimmed == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.purposes {
		if existing == trimmed {
			s.purposes = append(s.purposes[:i], s.purposes[i+1:]...)
			return
		}
	}
	s.purposes = append(s.purposes, trimmed)
}

// SelectAllAreas selects every area in the current pool.
func (s *State) SelectAllAreas() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, area := range s.pool {
		s.areaIDs[area.ID] = true
	}
}

// DeselectAllAreas clears the area selection.
func (s *State) DeselectAllAreas() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.areaIDs = make(map[uint]bool)
}

// PendingCount is the number of pages the current selection would
// generate: selected areas times selected purposes.
func (s *State) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.areaIDs) * len(s.purposes)
}

// Snapshot captures the state for display.
type Snapshot struct {
	CityIDs      []uint    `json:"cityIds"`
	AreaIDs      []uint    `json:"areaIds"`
	Purposes     []string  `json:"purposes"`
	Pool         []db.Area `json:"areaPool"`
	PendingCount int       `json:"pendingCount"`
}

// Snapshot returns a copy of the current selection. Selected area ids
// follow pool order so the UI renders deterministically.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	areaIDs := make([]uint, 0, len(s.areaIDs))
	for _, area := range s.pool {
		if s.areaIDs[area.ID] {
			areaIDs = append(areaIDs, area.ID)
		}
	}

	return Snapshot{
		CityIDs:      append([]uint(nil), s.cityIDs...),
		AreaIDs:      areaIDs,
		Purposes:     append([]string(nil), s.purposes...),
		Pool:         append([]db.Area(nil), s.pool...),
		PendingCount: len(s.areaIDs) * len(s.purposes),
	}
}

// Candidates expands the selection into fully formed page candidates:
// pool order for areas, selection order for purposes. It fails before
// touching the template engine when either dimension is empty.
func (s *State) Candidates() ([]db.DynamicPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.areaIDs) == 0 || len(s.purposes) == 0 {
		return nil, ErrNothingSelected
	}

	candidates := make([]db.DynamicPage, 0, len(s.areaIDs)*len(s.purposes))
	for _, area := range s.pool {
		if !s.areaIDs[area.ID] {
			continue
		}
		for _, purpose := range s.purposes {
			page := content.Generate(area.Name, area.Location.Name, purpose)
			candidates = append(candidates, db.DynamicPage{
				AreaName:        area.Name,
				CityName:        area.Location.Name,
				Purpose:         purpose,
				Slug:            page.Slug,
				OverviewContent: page.Overview,
				BenefitsContent: page.BenefitsEncoded(),
				WhyUsContent:    page.WhyUsEncoded(),
				IsActive:        true,
			})
		}
	}
	return candidates, nil
}
