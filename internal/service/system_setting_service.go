package service

import (
	"strings"

	"github.com/virtualdesk/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SystemSettings is the admin-configurable site information.
type SystemSettings struct {
	SiteName     string
	ContactPhone string
	ContactEmail string
	AIAPIKey     string
}

// SystemSettingService reads and updates site-level settings.
type SystemSettingService struct {
	db *gorm.DB
}

// NewSystemSettingService returns a new SystemSettingService instance.
func NewSystemSettingService(gdb *gorm.DB) *SystemSettingService {
	return &SystemSettingService{db: gdb}
}

var settingKeys = []string{
	db.SettingKeySiteName,
	db.SettingKeyContactPhone,
	db.SettingKeyContactEmail,
	db.SettingKeyAIAPIKey,
}

// GetSettings reads the stored settings; unset keys come back empty and
// callers apply their own defaults.
func (s *SystemSettingService) GetSettings() (SystemSettings, error) {
	var rows []db.SystemSetting
	if err := s.db.Where("key IN ?", settingKeys).Find(&rows).Error; err != nil {
		return SystemSettings{}, err
	}

	var settings SystemSettings
	for _, row := range rows {
		value := strings.TrimSpace(row.Value)
		switch row.Key {
		case db.SettingKeySiteName:
			settings.SiteName = value
		case db.SettingKeyContactPhone:
			settings.ContactPhone = value
		case db.SettingKeyContactEmail:
			settings.ContactEmail = value
		case db.SettingKeyAIAPIKey:
			settings.AIAPIKey = value
		}
	}
	return settings, nil
}

// UpdateSettings upserts the given settings.
func (s *SystemSettingService) UpdateSettings(input SystemSettings) error {
	values := map[string]string{
		db.SettingKeySiteName:     strings.TrimSpace(input.SiteName),
		db.SettingKeyContactPhone: strings.TrimSpace(input.ContactPhone),
		db.SettingKeyContactEmail: strings.TrimSpace(input.ContactEmail),
		db.SettingKeyAIAPIKey:     strings.TrimSpace(input.AIAPIKey),
	}

	for key, value := range values {
		setting := db.SystemSetting{Key: key, Value: value}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&setting).Error
		if err != nil {
			return err
		}
	}
	return nil
}
