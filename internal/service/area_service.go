package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/virtualdesk/internal/cache"
	"github.com/virtualdesk/internal/content"
	"github.com/virtualdesk/internal/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrAreaNameMissing  = errors.New("area name is required")
)

const (
	locationsCacheKey = "locations"
	areasCachePrefix  = "areas"
	catalogCacheTTL   = 5 * time.Minute
)

// AreaService serves the city/area catalog through an explicit query
// cache, invalidated after every catalog write.
type AreaService struct {
	db     *gorm.DB
	cache  cache.Store
	logger *zap.Logger
}

// NewAreaService returns an AreaService over the given store and cache.
func NewAreaService(gdb *gorm.DB, store cache.Store, logger *zap.Logger) *AreaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AreaService{db: gdb, cache: store, logger: logger}
}

func areasCacheKey(locationID uint) string {
	return cache.Key(areasCachePrefix, fmt.Sprintf("location=%d", locationID))
}

// Locations lists every city, cache first.
func (s *AreaService) Locations(ctx context.Context) ([]db.Location, error) {
	var cached []db.Location
	if found, err := s.cache.Get(ctx, locationsCacheKey, &cached); err != nil {
		s.logger.Warn("location cache read failed", zap.Error(err))
	} else if found {
		return cached, nil
	}

	var locations []db.Location
	if err := s.db.Order("name").Find(&locations).Error; err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, locationsCacheKey, locations, catalogCacheTTL); err != nil {
		s.logger.Warn("location cache write failed", zap.Error(err))
	}
	return locations, nil
}

// AreasForLocation lists a city's areas with their Location populated,
// cache first. It satisfies selection.AreaProvider.
func (s *AreaService) AreasForLocation(ctx context.Context, locationID uint) ([]db.Area, error) {
	key := areasCacheKey(locationID)

	var cached []db.Area
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		s.logger.Warn("area cache read failed", zap.Uint("location", locationID), zap.Error(err))
	} else if found {
		return cached, nil
	}

	var areas []db.Area
	if err := s.db.Preload("Location").
		Where("location_id = ?", locationID).
		Order("name").
		Find(&areas).Error; err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, areas, catalogCacheTTL); err != nil {
		s.logger.Warn("area cache write failed", zap.Uint("location", locationID), zap.Error(err))
	}
	return areas, nil
}

// CreateLocation adds a city and invalidates the location cache. The
// slug is derived from the name when absent.
func (s *AreaService) CreateLocation(ctx context.Context, name, slug string) (*db.Location, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrAreaNameMissing
	}

	location := db.Location{Name: trimmed, Slug: strings.TrimSpace(slug)}
	if location.Slug == "" {
		location.Slug = content.Slugify(trimmed)
	}

	if err := s.db.Create(&location).Error; err != nil {
		return nil, err
	}

	s.invalidateCatalog(ctx)
	return &location, nil
}

// invalidateCatalog drops the location list and every cached area list.
// Cached area lists embed their Location, so a location write can stale
// any of them.
func (s *AreaService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.Delete(ctx, locationsCacheKey); err != nil {
		s.logger.Warn("location cache invalidation failed", zap.Error(err))
	}
	if err := s.cache.DeletePrefix(ctx, areasCachePrefix); err != nil {
		s.logger.Warn("area cache invalidation failed", zap.Error(err))
	}
}

// CreateArea adds an area under a city and invalidates that city's
// cached area list.
func (s *AreaService) CreateArea(ctx context.Context, locationID uint, name string) (*db.Area, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrAreaNameMissing
	}

	var location db.Location
	if err := s.db.First(&location, locationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	area := db.Area{Name: trimmed, LocationID: locationID, Location: location}
	if err := s.db.Create(&area).Error; err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, areasCacheKey(locationID)); err != nil {
		s.logger.Warn("area cache invalidation failed", zap.Uint("location", locationID), zap.Error(err))
	}
	return &area, nil
}
