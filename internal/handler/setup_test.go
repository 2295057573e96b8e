package handler

import (
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/virtualdesk/internal/cache"
	"github.com/virtualdesk/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *API {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
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

	db.DB = gdb

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return NewAPI(gdb, cache.NewMemory(), nil, Options{
		SiteBaseURL: "https://virtualdesk.test",
		AIBaseURL:   "https://api.openai.com/v1",
		AIModel:     "gpt-4o-mini",
	})
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func seedTestCatalog(t *testing.T, api *API) (db.Location, []db.Area) {
	t.Helper()

	pune := db.Location{Name: "Pune", Slug: "pune"}
	if err := api.db.Create(&pune).Error; err != nil {
		t.Fatalf("failed to seed location: %v", err)
	}

	areas := []db.Area{
		{Name: "Baner", LocationID: pune.ID},
		{Name: "Aundh", LocationID: pune.ID},
	}
	if err := api.db.Create(&areas).Error; err != nil {
		t.Fatalf("failed to seed areas: %v", err)
	}

	return pune, areas
}
