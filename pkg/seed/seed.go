package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"gharbari_backend/internal/model"
)

// ImportCatalogFile imports a property catalog CSV from the local filesystem.
func ImportCatalogFile(db *gorm.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("could not open catalog file: %w", err)
	}
	defer f.Close()

	return ImportCatalogCSV(db, f)
}

// ImportCatalogCSV imports property rows from a CSV stream. The first row
// must be a header; columns are matched by name so column order does not
// matter. Rows that fail to parse are logged and skipped rather than
// aborting the import. Returns how many rows were imported.
func ImportCatalogCSV(db *gorm.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("could not read catalog header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[normalizeHeader(name)] = i
	}
	for _, required := range []string{"project_name", "area", "property_type"} {
		if _, ok := cols[required]; !ok {
			return 0, fmt.Errorf("catalog header missing %q column", required)
		}
	}

	// Configuration rows are shared across properties, so cache lookups.
	configCache := map[string]*model.Configuration{}

	imported := 0
	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Skipping catalog line %d: %v", line, err)
			continue
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		prop := model.Property{
			ProjectName:    field("project_name"),
			PropertyType:   field("property_type"),
			Area:           field("area"),
			PossessionDate: field("possession_date"),
			TotalUnits:     parseInt(field("total_units")),
			AreaSizeAcres:  parseFloat(field("area_size_acres")),
			MinSizeSqft:    parseInt(field("min_size_sqft")),
			MaxSizeSqft:    parseInt(field("max_size_sqft")),
			PricePerSqft:   int(parseFloat(field("price_per_sqft"))),
		}
		if prop.ProjectName == "" || prop.Area == "" {
			log.Printf("Skipping catalog line %d: missing project name or area", line)
			continue
		}

		for _, name := range splitConfigurations(field("configurations")) {
			cfg, ok := configCache[name]
			if !ok {
				cfg = &model.Configuration{Name: name}
				if err := db.Where("name = ?", name).FirstOrCreate(cfg).Error; err != nil {
					log.Printf("Could not create configuration %q: %v", name, err)
					continue
				}
				configCache[name] = cfg
			}
			prop.Configurations = append(prop.Configurations, *cfg)
		}

		if err := db.Create(&prop).Error; err != nil {
			log.Printf("Skipping catalog line %d (%s): %v", line, prop.ProjectName, err)
			continue
		}
		imported++
	}

	log.Printf("Catalog import complete: %d properties", imported)
	return imported, nil
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	return strings.TrimPrefix(name, "\uFEFF")
}

// splitConfigurations splits a cell like "2BHK, 3BHK / 4BHK" into labels.
func splitConfigurations(cell string) []string {
	if cell == "" {
		return nil
	}
	fields := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == '/' || r == ';'
	})
	var names []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			names = append(names, strings.ToUpper(f))
		}
	}
	return names
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}
