package service

import (
	"testing"

	"github.com/virtualdesk/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.Location{},
		&db.Area{},
		&db.DynamicPage{},
		&db.Plan{},
		&db.Lead{},
		&db.PageVisit{},
		&db.SystemSetting{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

func seedCatalog(t *testing.T, gdb *gorm.DB) (db.Location, []db.Area) {
	t.Helper()

	pune := db.Location{Name: "Pune", Slug: "pune"}
	if err := gdb.Create(&pune).Error; err != nil {
		t.Fatalf("failed to seed location: %v", err)
	}

	areas := []db.Area{
		{Name: "Aundh", LocationID: pune.ID},
		{Name: "Baner", LocationID: pune.ID},
	}
	if err := gdb.Create(&areas).Error; err != nil {
		t.Fatalf("failed to seed areas: %v", err)
	}

	return pune, areas
}
