package search

import (
	"fmt"
	"strconv"
	"strings"

	"gharbari_backend/internal/model"
)

// PropertyRecord is the display shape renderers consume: sizes, prices and
// configurations pre-formatted, with the approximate total price in the
// Lakhs/Crores convention.
type PropertyRecord struct {
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Area             string `json:"area"`
	Type             string `json:"type"`
	Configuration    string `json:"configuration"`
	Size             string `json:"size"`
	PricePerSqft     string `json:"price_per_sqft"`
	ApproxTotalPrice string `json:"approx_total_price"`
	PossessionDate   string `json:"possession_date"`
}

func formatProperty(p *model.Property) PropertyRecord {
	return PropertyRecord{
		Name:             p.ProjectName,
		Slug:             p.Slug,
		Area:             p.Area,
		Type:             p.PropertyType,
		Configuration:    p.ConfigurationLabel(),
		Size:             fmt.Sprintf("%d - %d sqft", p.MinSizeSqft, p.MaxSizeSqft),
		PricePerSqft:     "₹" + groupDigits(int64(p.PricePerSqft)),
		ApproxTotalPrice: formatPriceRange(p.MinTotalPrice(), p.MaxTotalPrice()),
		PossessionDate:   p.PossessionDate,
	}
}

func formatProperties(props []model.Property) []PropertyRecord {
	records := make([]PropertyRecord, 0, len(props))
	for i := range props {
		records = append(records, formatProperty(&props[i]))
	}
	return records
}

// formatPriceRange renders a total-price interval in Lakhs when both bounds
// are under a crore, in Crores when both are at or above, and mixed units
// when the interval straddles the crore mark.
func formatPriceRange(minTotal, maxTotal float64) string {
	switch {
	case minTotal < rupeesPerCrore && maxTotal < rupeesPerCrore:
		return fmt.Sprintf("₹%.2f - ₹%.2f Lakhs", minTotal/rupeesPerLakh, maxTotal/rupeesPerLakh)
	case minTotal < rupeesPerCrore:
		return fmt.Sprintf("₹%.2f Lakhs - ₹%.2f Cr", minTotal/rupeesPerLakh, maxTotal/rupeesPerCrore)
	default:
		return fmt.Sprintf("₹%.2f - ₹%.2f Cr", minTotal/rupeesPerCrore, maxTotal/rupeesPerCrore)
	}
}

// formatRupees renders a whole rupee amount with digit grouping.
func formatRupees(amount float64) string {
	return "₹" + groupDigits(int64(amount))
}

// groupDigits inserts thousands separators into a non-negative integer.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
