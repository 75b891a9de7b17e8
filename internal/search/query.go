package search

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"gharbari_backend/internal/model"
)

// executeQuery applies every present constraint to the catalog snapshot and
// returns up to limit properties, best matches first. The area constraint
// arrives pre-resolved as a set of canonical names; an empty set means no
// area filter.
func executeQuery(props []model.Property, c Criteria, areas []string, limit int, now time.Time) []model.Property {
	var expanded []string
	if c.Configurations != nil {
		expanded = expandConfigurations(*c.Configurations)
	}

	var filtered []model.Property
	for _, p := range props {
		if !matchesAreaSet(p.Area, areas) {
			continue
		}
		if c.PropertyType != nil && !strings.EqualFold(p.PropertyType, *c.PropertyType) {
			continue
		}
		if !matchesBudget(&p, c.MinBudget, c.MaxBudget) {
			continue
		}
		if expanded != nil && countConfigMatches(&p, expanded) == 0 {
			continue
		}
		if c.PossessionDate != nil && !matchesPossession(p.PossessionDate, *c.PossessionDate, now) {
			continue
		}
		if c.MinSize != nil && float64(p.MaxSizeSqft) < *c.MinSize {
			continue
		}
		if c.MaxSize != nil && float64(p.MinSizeSqft) > *c.MaxSize {
			continue
		}
		filtered = append(filtered, p)
	}

	orderResults(filtered, c, expanded)

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

// orderResults sorts in place: exact area/type matches first, then by count
// of matching configuration labels, then by closeness to the requested
// budget. The sort is stable, so catalog order breaks remaining ties.
func orderResults(props []model.Property, c Criteria, expandedConfigs []string) {
	sort.SliceStable(props, func(i, j int) bool {
		a, b := &props[i], &props[j]

		if c.Area != nil {
			ae, be := strings.EqualFold(a.Area, *c.Area), strings.EqualFold(b.Area, *c.Area)
			if ae != be {
				return ae
			}
		}
		if c.PropertyType != nil {
			ae, be := strings.EqualFold(a.PropertyType, *c.PropertyType), strings.EqualFold(b.PropertyType, *c.PropertyType)
			if ae != be {
				return ae
			}
		}
		if expandedConfigs != nil {
			am, bm := countConfigMatches(a, expandedConfigs), countConfigMatches(b, expandedConfigs)
			if am != bm {
				return am > bm
			}
		}

		switch {
		case c.MinBudget != nil && c.MaxBudget != nil:
			target := (*c.MinBudget + *c.MaxBudget) / 2
			ad := math.Abs((a.MinTotalPrice()+a.MaxTotalPrice())/2 - target)
			bd := math.Abs((b.MinTotalPrice()+b.MaxTotalPrice())/2 - target)
			if ad != bd {
				return ad < bd
			}
		case c.MinBudget != nil:
			if a.MinTotalPrice() != b.MinTotalPrice() {
				return a.MinTotalPrice() < b.MinTotalPrice()
			}
		case c.MaxBudget != nil:
			if a.MaxTotalPrice() != b.MaxTotalPrice() {
				return a.MaxTotalPrice() > b.MaxTotalPrice()
			}
		}

		return false
	})
}

func matchesAreaSet(area string, areas []string) bool {
	if len(areas) == 0 {
		return true
	}
	for _, a := range areas {
		if strings.EqualFold(area, a) {
			return true
		}
	}
	return false
}

// matchesBudget uses interval intersection: a property qualifies when any
// point of its size-driven price range falls inside the requested budget.
func matchesBudget(p *model.Property, minBudget, maxBudget *float64) bool {
	if minBudget == nil && maxBudget == nil {
		return true
	}
	lo, hi := 0.0, math.Inf(1)
	if minBudget != nil {
		lo = *minBudget
	}
	if maxBudget != nil {
		hi = *maxBudget
	}
	return p.MaxTotalPrice() >= lo && p.MinTotalPrice() <= hi
}

// expandConfigurations widens a comma-separated configuration request with
// alternate spellings ("3BHK", "3 BHK", "3 Bedroom"). A 3BHK request also
// admits 2BHK: buyers asking for three bedrooms are routinely shown the
// slightly smaller option too.
func expandConfigurations(raw string) []string {
	var expanded []string
	for _, config := range strings.Split(raw, ",") {
		config = strings.TrimSpace(config)
		if config == "" {
			continue
		}
		expanded = append(expanded, config)

		upper := strings.ToUpper(config)
		if !strings.Contains(upper, "BHK") {
			continue
		}
		n := strings.TrimSpace(strings.ReplaceAll(upper, "BHK", ""))
		if !isDigits(n) {
			continue
		}
		expanded = append(expanded, n+" BHK", n+" Bedroom")
		if n == "3" {
			expanded = append(expanded, "2BHK", "2 BHK", "2 Bedroom")
		}
	}
	return expanded
}

func countConfigMatches(p *model.Property, expanded []string) int {
	count := 0
	for _, have := range p.Configurations {
		for _, want := range expanded {
			if strings.EqualFold(have.Name, want) {
				count++
				break
			}
		}
	}
	return count
}

// matchesPossession handles the free-text possession field. "Ready" requests
// match a literal ready marker or the current calendar year; a bare 4-digit
// year filters by substring; anything else is a plain substring match.
func matchesPossession(have, want string, now time.Time) bool {
	h := strings.ToLower(have)
	w := strings.ToLower(strings.TrimSpace(want))

	switch w {
	case "ready", "ready to move", "ready to move in":
		return strings.Contains(h, "ready") || strings.Contains(h, strconv.Itoa(now.Year()))
	}
	return strings.Contains(h, w)
}
