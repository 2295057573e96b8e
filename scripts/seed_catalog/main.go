package main

import (
	"fmt"
	"log"

	"github.com/virtualdesk/internal/config"
	"github.com/virtualdesk/internal/content"
	"github.com/virtualdesk/internal/db"
)

var catalog = map[string][]string{
	"Pune":      {"Baner", "Aundh", "Kothrud", "Viman Nagar", "Hinjewadi"},
	"Bengaluru": {"Koramangala 5th Block", "Indiranagar", "HSR Layout", "Whitefield"},
	"Mumbai":    {"Andheri East", "Bandra Kurla Complex", "Lower Parel"},
	"Delhi":     {"Connaught Place", "Nehru Place", "Saket"},
}

var plans = []db.Plan{
	{Name: "Starter", MonthlyPrice: 999, YearlyPrice: 9990, SortOrder: 1,
		Features: "Business address\nMail notifications"},
	{Name: "Business", MonthlyPrice: 1499, YearlyPrice: 14990, SortOrder: 2, Highlight: true,
		Features: "Business address\nGST registration support\nMail handling and forwarding\nMeeting room hours"},
	{Name: "Enterprise", MonthlyPrice: 2499, YearlyPrice: 24990, SortOrder: 3,
		Features: "Business address\nGST and company registration support\nDedicated receptionist\nUnlimited meeting room hours"},
}

// Seeds the demo catalog: cities, areas and pricing plans. Safe to run
// repeatedly; existing rows are left alone.
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("failed to initialize database:", err)
	}

	for city, areas := range catalog {
		location := db.Location{Name: city, Slug: content.Slugify(city)}
		if err := db.DB.Where(db.Location{Slug: location.Slug}).FirstOrCreate(&location).Error; err != nil {
			log.Fatal("failed to seed location:", err)
		}
		for _, areaName := range areas {
			area := db.Area{Name: areaName, LocationID: location.ID}
			if err := db.DB.Where(db.Area{Name: areaName, LocationID: location.ID}).FirstOrCreate(&area).Error; err != nil {
				log.Fatal("failed to seed area:", err)
			}
		}
		fmt.Printf("seeded %s with %d areas\n", city, len(areas))
	}

	for i := range plans {
		plan := plans[i]
		if err := db.DB.Where(db.Plan{Name: plan.Name}).FirstOrCreate(&plan).Error; err != nil {
			log.Fatal("failed to seed plan:", err)
		}
	}
	fmt.Printf("seeded %d plans\n", len(plans))
}
