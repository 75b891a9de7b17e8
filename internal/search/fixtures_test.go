package search

import (
	"time"

	"gharbari_backend/internal/model"
)

// testNow pins possession-date checks to a known year.
var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func prop(id uint, name, area, ptype string, minSize, maxSize, pricePerSqft int, possession string, configs ...string) model.Property {
	p := model.Property{
		ProjectName:    name,
		Area:           area,
		PropertyType:   ptype,
		MinSizeSqft:    minSize,
		MaxSizeSqft:    maxSize,
		PricePerSqft:   pricePerSqft,
		PossessionDate: possession,
	}
	p.ID = id
	for _, c := range configs {
		p.Configurations = append(p.Configurations, model.Configuration{Name: c})
	}
	return p
}

// fixtureProperties is a small catalog spanning five areas. Total price
// ranges, for reference:
//
//	Sky Towers      7.2M  - 10.8M
//	Lake Vista      10.5M - 15.4M
//	Palm Meadows    22.5M - 36M
//	Crown Residency 24M   - 36M
//	Green Heights   4.05M - 6.3M
//	Sunrise Enclave 5M    - 8M
//	Orchid Plots    10M   - 15M
func fixtureProperties() []model.Property {
	return []model.Property{
		prop(1, "Sky Towers", "Gachibowli", "Apartment", 1200, 1800, 6000, "Ready to Move", "2BHK", "3BHK"),
		prop(2, "Lake Vista", "Gachibowli", "Apartment", 1500, 2200, 7000, "Dec 2027", "3BHK"),
		prop(3, "Palm Meadows", "Kokapet", "Villa", 2500, 4000, 9000, "Ready to Move", "4BHK"),
		prop(4, "Crown Residency", "Banjara Hills", "Apartment", 2000, 3000, 12000, "Dec 2026", "3BHK", "4BHK"),
		prop(5, "Green Heights", "LB Nagar", "Apartment", 900, 1400, 4500, "Ready to Move", "2BHK"),
		prop(6, "Sunrise Enclave", "Miyapur", "Apartment", 1000, 1600, 5000, "Jun 2026", "2BHK", "3BHK"),
		prop(7, "Orchid Plots", "Kokapet", "Plot", 200, 300, 50000, "Ready"),
	}
}

func names(props []model.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.ProjectName)
	}
	return out
}

func recordNames(records []PropertyRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}
