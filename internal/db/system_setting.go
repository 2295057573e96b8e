package db

import "gorm.io/gorm"

// SystemSetting stores admin-configurable site-level key/value pairs.
type SystemSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName keeps the table name stable regardless of pluralization rules.
func (SystemSetting) TableName() string {
	return "system_settings"
}

const (
	// SettingKeySiteName is the public site name.
	SettingKeySiteName = "site_name"
	// SettingKeyContactPhone is the sales phone shown on landing pages.
	SettingKeyContactPhone = "contact_phone"
	// SettingKeyContactEmail is the sales email shown on landing pages.
	SettingKeyContactEmail = "contact_email"
	// SettingKeyAIAPIKey is the key for the AI link-suggestion provider.
	SettingKeyAIAPIKey = "ai_api_key"
)
