package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/virtualdesk/internal/content"
	"github.com/virtualdesk/internal/db"
	"gorm.io/gorm"
)

var (
	ErrDynamicPageNotFound = errors.New("dynamic page not found")
)

// BatchResult reports the outcome of one bulk submission. Created plus
// Skipped always equals the number of submitted candidates.
type BatchResult struct {
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
	Message string `json:"message"`
}

// DynamicPageService owns the dynamic page store: it is the only write
// path for page creation and the read path for slug resolution.
type DynamicPageService struct {
	db *gorm.DB
}

// NewDynamicPageService returns a new DynamicPageService instance.
func NewDynamicPageService(gdb *gorm.DB) *DynamicPageService {
	return &DynamicPageService{db: gdb}
}

// CreateBatch persists candidates in input order, skipping any whose
// slug already exists in the store or earlier in the same batch. Each
// insert stands alone; duplicates are counted, never treated as errors.
// Only a real database failure aborts the batch.
func (s *DynamicPageService) CreateBatch(candidates []db.DynamicPage) (BatchResult, error) {
	var result BatchResult
	seen := make(map[string]bool, len(candidates))

	for i := range candidates {
		candidate := candidates[i]
		candidate.ID = 0

		slug := strings.TrimSpace(candidate.Slug)
		if slug == "" {
			slug = content.PageSlug(candidate.AreaName, candidate.Purpose)
		}
		candidate.Slug = slug

		if seen[slug] {
			result.Skipped++
			continue
		}
		seen[slug] = true

		var count int64
		if err := s.db.Model(&db.DynamicPage{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return BatchResult{}, err
		}
		if count > 0 {
			result.Skipped++
			continue
		}

		if err := s.db.Create(&candidate).Error; err != nil {
			if isDuplicateKey(err) {
				// Lost a race with another writer; same outcome as a
				// pre-existing slug.
				result.Skipped++
				continue
			}
			return BatchResult{}, err
		}
		result.Created++
	}

	result.Message = fmt.Sprintf("Created %d pages, skipped %d duplicates", result.Created, result.Skipped)
	return result, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// List returns every page, newest first, for the admin list view.
func (s *DynamicPageService) List() ([]db.DynamicPage, error) {
	var pages []db.DynamicPage
	if err := s.db.Order("created_at DESC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// ListActive returns the active pages, used for sitemap-style listings
// and link suggestions.
func (s *DynamicPageService) ListActive() ([]db.DynamicPage, error) {
	var pages []db.DynamicPage
	if err := s.db.Where("is_active = ?", true).Order("created_at DESC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// GetByID fetches a page regardless of its active flag.
func (s *DynamicPageService) GetByID(id uint) (*db.DynamicPage, error) {
	var page db.DynamicPage
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDynamicPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// ResolveSlug fetches the active page for a public slug. Inactive and
// unknown slugs both resolve as not found.
func (s *DynamicPageService) ResolveSlug(slug string) (*db.DynamicPage, error) {
	var page db.DynamicPage
	err := s.db.Where("slug = ? AND is_active = ?", slug, true).First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDynamicPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// ToggleActive flips a page's public visibility.
func (s *DynamicPageService) ToggleActive(id uint) (*db.DynamicPage, error) {
	page, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	page.IsActive = !page.IsActive
	if err := s.db.Model(page).Update("is_active", page.IsActive).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// UpdateExtraContent replaces the admin-authored markdown appendix of a
// page. Generated content is never edited in place.
func (s *DynamicPageService) UpdateExtraContent(id uint, markdown string) (*db.DynamicPage, error) {
	page, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	page.ExtraContent = markdown
	if err := s.db.Model(page).Update("extra_content", markdown).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// Delete removes a page permanently.
func (s *DynamicPageService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.DynamicPage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDynamicPageNotFound
	}
	return nil
}
