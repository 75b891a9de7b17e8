package search

import (
	"regexp"
	"strconv"
	"strings"

	"gharbari_backend/internal/model"
)

// Rupee multipliers for Indian budget units.
const (
	rupeesPerLakh  = 100_000
	rupeesPerCrore = 10_000_000

	// A bare number above this is taken as a rupee amount in compact input.
	bareRupeeFloor = 10_000
)

// Extractor turns raw user text into criteria. Extraction is best effort:
// unparseable text contributes no fields and never fails.
type Extractor interface {
	Extract(text string) Criteria
}

// NewRuleExtractor returns the rule-based extractor: compact
// semicolon-delimited input ("5cr;ready;gachibowli;3bhk") and regex-driven
// natural language ("3BHK apartment in Banjara Hills under 2 crore").
func NewRuleExtractor() Extractor {
	return &ruleExtractor{}
}

type ruleExtractor struct{}

func (e *ruleExtractor) Extract(text string) Criteria {
	if strings.Contains(text, ";") {
		return parseCompact(text)
	}
	return parseNatural(text)
}

// parseCompact classifies each semicolon-separated token independently:
// budget-with-unit, possession keyword, BHK count, property-type keyword,
// else an area guess.
func parseCompact(text string) Criteria {
	var c Criteria
	for _, part := range strings.Split(text, ";") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}

		switch {
		case strings.Contains(part, "cr"):
			raw := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(part, "crore", ""), "cr", ""))
			if amount, err := strconv.ParseFloat(raw, 64); err == nil {
				c.MaxBudget = floatPtr(amount * rupeesPerCrore)
			}
		case strings.Contains(part, "lakh") || strings.Contains(part, "lac"):
			raw := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(part, "lakh", ""), "lac", ""))
			if amount, err := strconv.ParseFloat(raw, 64); err == nil {
				c.MaxBudget = floatPtr(amount * rupeesPerLakh)
			}
		case isDigits(part):
			if amount, err := strconv.ParseFloat(part, 64); err == nil && amount > bareRupeeFloor {
				c.MaxBudget = floatPtr(amount)
			}
		case part == "ready" || part == "readytomove" || part == "ready to move":
			c.PossessionDate = strPtr(model.PossessionReadyToMove)
		case part == "underconstruction" || part == "under construction" || part == "upcoming":
			c.PossessionDate = strPtr(model.PossessionUnderConstruction)
		case strings.Contains(part, "bhk"):
			n := strings.TrimSpace(strings.ReplaceAll(part, "bhk", ""))
			if isDigits(n) {
				c.Configurations = strPtr(n + "BHK")
			}
		case part == "apartment" || part == "appartment" || part == "flat":
			c.PropertyType = strPtr(string(model.PropertyTypeApartment))
		case part == "villa" || part == "independent house":
			c.PropertyType = strPtr(string(model.PropertyTypeVilla))
		case part == "plot" || part == "land":
			c.PropertyType = strPtr(string(model.PropertyTypePlot))
		default:
			c.Area = strPtr(part)
		}
	}
	return c
}

// Area patterns are tried most specific first; the first hit wins.
var (
	areaPatterns = []*regexp.Regexp{
		// Preposition-anchored mention terminated by a qualifier word.
		regexp.MustCompile(`(?i)(?:in|at|near|around|from)\s+([A-Za-z0-9 ]+?)(?:\s+(?:with|for|under|below|above|having|that|which|and)\b|\s*[,.]|\s*$)`),
		// Preposition-anchored name ending in a common locality suffix.
		regexp.MustCompile(`(?i)(?:in|at|near|around)\s+([A-Za-z0-9 ]+?(?:hills|city|nagar|puram|pally|colony|gardens|heights|guda|bad|poor|pet|halli))(?:\s|\.|$)`),
		// Bare locality-suffix mention without a preposition.
		regexp.MustCompile(`(?i)\b([A-Za-z0-9 ]+?(?:hills|city|nagar|puram|pally|colony|gardens|heights|guda|bad|poor|pet|halli))\b`),
		// Fallback: any word following a location preposition.
		regexp.MustCompile(`(?i)(?:in|at|near|around)\s+([A-Za-z][A-Za-z0-9 ]+?)(?:\s|\.|$)`),
	}
	// Filler stripped from a captured area mention before matching.
	areaStopWords = regexp.MustCompile(`(?i)\b(?:in|at|near|around|from|the|a|an|show|me|find|want|looking|for|some|any|good|best)\b`)

	bhkPattern    = regexp.MustCompile(`(?i)(\d+)\s*(?:bhk|bedroom)`)
	budgetPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(lakh|lac|crore|cr)`)
	maxQualifier  = regexp.MustCompile(`(?i)\b(?:under|less than|below|max|maximum|not more than)\b`)
	minQualifier  = regexp.MustCompile(`(?i)\b(?:above|more than|at least|min|minimum)\b`)

	readyPattern        = regexp.MustCompile(`(?i)\b(?:ready|ready to move|immediate|ready for possession)\b`)
	constructionPattern = regexp.MustCompile(`(?i)\b(?:under construction|upcoming|future|not ready)\b`)

	apartmentPattern = regexp.MustCompile(`(?i)\b(?:apartments?|flats?)\b`)
	villaPattern     = regexp.MustCompile(`(?i)\bvillas?\b`)
	plotPattern      = regexp.MustCompile(`(?i)\b(?:plots?|open plots?|land)\b`)
)

func parseNatural(text string) Criteria {
	var c Criteria

	for _, pattern := range areaPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		area := strings.Join(strings.Fields(areaStopWords.ReplaceAllString(m[1], "")), " ")
		if len(area) > 1 {
			c.Area = strPtr(area)
			break
		}
	}

	switch {
	case apartmentPattern.MatchString(text):
		c.PropertyType = strPtr(string(model.PropertyTypeApartment))
	case villaPattern.MatchString(text):
		c.PropertyType = strPtr(string(model.PropertyTypeVilla))
	case plotPattern.MatchString(text):
		c.PropertyType = strPtr(string(model.PropertyTypePlot))
	}

	if m := bhkPattern.FindStringSubmatch(text); m != nil {
		c.Configurations = strPtr(m[1] + "BHK")
	}

	if m := budgetPattern.FindStringSubmatch(text); m != nil {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			switch strings.ToLower(m[2]) {
			case "cr", "crore":
				amount *= rupeesPerCrore
			case "lakh", "lac":
				amount *= rupeesPerLakh
			}
			switch {
			case maxQualifier.MatchString(text):
				c.MaxBudget = floatPtr(amount)
			case minQualifier.MatchString(text):
				c.MinBudget = floatPtr(amount)
			default:
				// Direction unclear; treat as a ceiling.
				c.MaxBudget = floatPtr(amount)
			}
		}
	}

	switch {
	case readyPattern.MatchString(text):
		c.PossessionDate = strPtr(model.PossessionReadyToMove)
	case constructionPattern.MatchString(text):
		c.PossessionDate = strPtr(model.PossessionUnderConstruction)
	}

	return c
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
