package model

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Property Types
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "Apartment"
	PropertyTypeVilla      PropertyType = "Villa"
	PropertyTypePlot       PropertyType = "Plot"
	PropertyTypeTownhouse  PropertyType = "Townhouse"
	PropertyTypeCommercial PropertyType = "Commercial"
)

// Possession labels used across extraction and filtering.
const (
	PossessionReadyToMove       = "Ready to Move"
	PossessionUnderConstruction = "Under Construction"
)

// Property is a single catalog record. The catalog is imported once and
// treated as read-only for the lifetime of the process.
type Property struct {
	gorm.Model
	ProjectName    string  `json:"project_name" gorm:"not null"`
	Slug           string  `json:"slug" gorm:"index"`
	PropertyType   string  `json:"property_type" gorm:"not null;index"`
	Area           string  `json:"area" gorm:"not null;index"`
	PossessionDate string  `json:"possession_date" gorm:"not null"`
	TotalUnits     int     `json:"total_units"`
	AreaSizeAcres  float64 `json:"area_size_acres"`
	MinSizeSqft    int     `json:"min_size_sqft" gorm:"not null"`
	MaxSizeSqft    int     `json:"max_size_sqft" gorm:"not null"`
	PricePerSqft   int     `json:"price_per_sqft" gorm:"not null"`

	Configurations []Configuration `json:"configurations" gorm:"many2many:property_configurations;"`
}

// Configuration is a BHK-style label (e.g. "2BHK"), shared across properties.
type Configuration struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex;not null"`

	Properties []Property `json:"-" gorm:"many2many:property_configurations;"`
}

// MinTotalPrice is the total price at the smallest unit size.
func (p *Property) MinTotalPrice() float64 {
	return float64(p.MinSizeSqft) * float64(p.PricePerSqft)
}

// MaxTotalPrice is the total price at the largest unit size.
func (p *Property) MaxTotalPrice() float64 {
	return float64(p.MaxSizeSqft) * float64(p.PricePerSqft)
}

// ConfigurationNames returns the property's configuration labels in join order.
func (p *Property) ConfigurationNames() []string {
	names := make([]string, 0, len(p.Configurations))
	for _, c := range p.Configurations {
		names = append(names, c.Name)
	}
	return names
}

// ConfigurationLabel joins the configuration names for display.
func (p *Property) ConfigurationLabel() string {
	names := p.ConfigurationNames()
	if len(names) == 0 {
		return "Not specified"
	}
	return strings.Join(names, ", ")
}

// BeforeCreate derives a URL-safe slug from the project name.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		s := slug.Make(p.ProjectName)

		var count int64
		tx.Model(&Property{}).Where("slug = ?", s).Count(&count)
		if count > 0 {
			s = fmt.Sprintf("%s-%s", s, slug.Make(p.Area))
		}

		p.Slug = s
	}
	return nil
}
