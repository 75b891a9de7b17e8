// pkg/catalog/catalog.go
package catalog

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"gharbari_backend/internal/model"
)

// Catalog is the read-only snapshot of all properties, loaded once at
// startup. Search calls never touch the database; they scan this snapshot.
// All accessors are safe for concurrent use because nothing mutates after
// construction.
type Catalog struct {
	properties []model.Property
	areas      []string
	types      []string
	configs    []string
	minPrice   float64
	maxPrice   float64
}

// Load reads the full property catalog from the database with its
// configuration labels. Loading is all or nothing: an error or an empty
// table means no catalog, never a partial one.
func Load(db *gorm.DB) (*Catalog, error) {
	var props []model.Property
	if err := db.Preload("Configurations").Order("id").Find(&props).Error; err != nil {
		return nil, fmt.Errorf("could not load property catalog: %w", err)
	}
	if len(props) == 0 {
		return nil, fmt.Errorf("property catalog is empty; import a catalog CSV first")
	}
	return New(props), nil
}

// New builds a snapshot from an in-memory property list.
func New(props []model.Property) *Catalog {
	c := &Catalog{properties: props}

	seenAreas := map[string]bool{}
	seenTypes := map[string]bool{}
	seenConfigs := map[string]bool{}

	for i := range props {
		p := &props[i]
		if !seenAreas[p.Area] {
			seenAreas[p.Area] = true
			c.areas = append(c.areas, p.Area)
		}
		if !seenTypes[p.PropertyType] {
			seenTypes[p.PropertyType] = true
			c.types = append(c.types, p.PropertyType)
		}
		for _, cfg := range p.Configurations {
			if !seenConfigs[cfg.Name] {
				seenConfigs[cfg.Name] = true
				c.configs = append(c.configs, cfg.Name)
			}
		}

		minTotal, maxTotal := p.MinTotalPrice(), p.MaxTotalPrice()
		if i == 0 || minTotal < c.minPrice {
			c.minPrice = minTotal
		}
		if maxTotal > c.maxPrice {
			c.maxPrice = maxTotal
		}
	}

	return c
}

// Properties returns the catalog records in import order.
func (c *Catalog) Properties() []model.Property {
	return c.properties
}

func (c *Catalog) Len() int {
	return len(c.properties)
}

// Areas returns the distinct canonical area names in catalog order. The
// area matcher relies on this order for stable tie-breaking.
func (c *Catalog) Areas() []string {
	return c.areas
}

// SortedAreas returns the distinct areas alphabetically, for display.
func (c *Catalog) SortedAreas() []string {
	out := append([]string(nil), c.areas...)
	sort.Strings(out)
	return out
}

// PropertyTypes returns the distinct property types alphabetically.
func (c *Catalog) PropertyTypes() []string {
	out := append([]string(nil), c.types...)
	sort.Strings(out)
	return out
}

// ConfigurationNames returns the distinct configuration labels alphabetically.
func (c *Catalog) ConfigurationNames() []string {
	out := append([]string(nil), c.configs...)
	sort.Strings(out)
	return out
}

// PriceRange returns the minimum and maximum total price across the catalog.
func (c *Catalog) PriceRange() (float64, float64) {
	return c.minPrice, c.maxPrice
}
