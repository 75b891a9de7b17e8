package search

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"gharbari_backend/internal/model"
	"gharbari_backend/pkg/catalog"
	"gharbari_backend/pkg/prefs"
)

const (
	DefaultResultLimit = 10

	// An area-only query gets a larger window so the caller can show
	// everything available in the location.
	areaOnlyResultLimit = 15

	// Fewer results than this triggers the relaxation strategies.
	relaxThreshold = 2

	// How many sample areas to surface when the requested one is unknown.
	sampleAreaCount = 10
)

// Result is the outcome of one search call. AreaNotFound is the terminal
// "unknown area" variant: empty properties plus sample areas for the caller
// to re-prompt with. Advice is always non-empty.
type Result struct {
	Properties    []PropertyRecord `json:"properties"`
	Count         int              `json:"count"`
	ExactMatch    bool             `json:"exact_match"`
	FuzzyMatch    bool             `json:"fuzzy_match,omitempty"`
	AreaNotFound  bool             `json:"area_not_found,omitempty"`
	UserInputArea string           `json:"user_input_area,omitempty"`
	SampleAreas   []string         `json:"all_areas,omitempty"`
	Feedback      *Feedback        `json:"feedback,omitempty"`
	Advice        string           `json:"advice"`
}

// PreferenceSummary is the human-readable projection of a session's stored
// preferences.
type PreferenceSummary struct {
	HasPreferences bool              `json:"has_preferences"`
	Preferences    map[string]string `json:"preferences,omitempty"`
	LastUpdated    *time.Time        `json:"last_updated,omitempty"`
	Message        string            `json:"message"`
}

// Service wires the extractor, the catalog snapshot and the preference
// store together. The catalog is read-only, so concurrent searches need no
// coordination; per-session state lives entirely in the store.
type Service struct {
	catalog   *catalog.Catalog
	store     prefs.Store
	extractor Extractor
	limit     int
	now       func() time.Time
	rng       *rand.Rand
}

func NewService(cat *catalog.Catalog, store prefs.Store, extractor Extractor, limit int) *Service {
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	return &Service{
		catalog:   cat,
		store:     store,
		extractor: extractor,
		limit:     limit,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Search runs a structured query. Stored session preferences fill in fields
// the caller left unset, so a follow-up like "what about 3BHK" refines the
// previous search instead of starting over. The incoming non-null fields
// are then persisted for the next turn.
func (s *Service) Search(c Criteria, sessionID string) (*Result, error) {
	merged := c
	if sessionID != "" {
		stored, err := s.store.Get(sessionID)
		if err != nil {
			return nil, fmt.Errorf("could not load session preferences: %w", err)
		}
		merged = c.MergedWith(CriteriaFromPreference(stored))

		if !c.IsEmpty() {
			if err := s.store.Upsert(c.Preference(sessionID)); err != nil {
				return nil, fmt.Errorf("could not store session preferences: %w", err)
			}
		}
	}
	return s.run(merged), nil
}

// SearchText extracts criteria from raw user text, then searches.
func (s *Service) SearchText(text, sessionID string) (*Result, error) {
	return s.Search(s.extractor.Extract(text), sessionID)
}

// Preferences returns the stored criteria for a session, formatted for
// display.
func (s *Service) Preferences(sessionID string) (*PreferenceSummary, error) {
	if sessionID == "" {
		return &PreferenceSummary{
			Message: "Session not initialized. Your preferences will be saved once you search for properties.",
		}, nil
	}

	pref, err := s.store.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not load session preferences: %w", err)
	}
	if pref == nil || pref.IsEmpty() {
		return &PreferenceSummary{
			Message: "No preferences stored yet. Share a location, budget or property type to get personalized recommendations.",
		}, nil
	}

	formatted := map[string]string{}
	if pref.Area != nil {
		formatted["area"] = *pref.Area
	}
	if pref.PropertyType != nil {
		formatted["property_type"] = *pref.PropertyType
	}
	switch {
	case pref.MinBudget != nil && pref.MaxBudget != nil:
		formatted["budget"] = fmt.Sprintf("%s - %s", formatRupees(*pref.MinBudget), formatRupees(*pref.MaxBudget))
	case pref.MinBudget != nil:
		formatted["budget"] = "Above " + formatRupees(*pref.MinBudget)
	case pref.MaxBudget != nil:
		formatted["budget"] = "Up to " + formatRupees(*pref.MaxBudget)
	}
	if pref.Configuration != nil {
		formatted["configuration"] = *pref.Configuration
	}
	switch {
	case pref.MinSize != nil && pref.MaxSize != nil:
		formatted["size"] = fmt.Sprintf("%.0f - %.0f sqft", *pref.MinSize, *pref.MaxSize)
	case pref.MinSize != nil:
		formatted["size"] = fmt.Sprintf("Above %.0f sqft", *pref.MinSize)
	case pref.MaxSize != nil:
		formatted["size"] = fmt.Sprintf("Up to %.0f sqft", *pref.MaxSize)
	}
	if pref.PossessionDate != nil {
		formatted["possession_date"] = *pref.PossessionDate
	}

	updated := pref.LastUpdated
	return &PreferenceSummary{
		HasPreferences: true,
		Preferences:    formatted,
		LastUpdated:    &updated,
		Message:        "Here are your current preferences. You can update them at any time to refine your search.",
	}, nil
}

// run executes the merged criteria against the catalog snapshot, relaxing
// constraints when the exact query comes up short.
func (s *Service) run(c Criteria) *Result {
	limit := s.limit
	if c.AreaOnly() && limit < areaOnlyResultLimit {
		limit = areaOnlyResultLimit
	}

	var matches []AreaMatch
	var areas []string
	if c.Area != nil {
		matches = MatchAreas(*c.Area, s.catalog.Areas())
		if len(matches) == 0 {
			return s.areaNotFound(*c.Area)
		}
		areas = AreaNames(matches)
	}

	now := s.now()
	conditions := c.Conditions()
	props := executeQuery(s.catalog.Properties(), c, areas, limit, now)

	exact := len(props) > 0 && len(conditions) > 0 && (c.Area == nil || IsExact(matches))

	fb := Feedback{
		Strategy:        StrategyExactMatch,
		MatchedAreas:    areas,
		AreaMatchScores: matches,
	}
	if !exact {
		if c.Area != nil {
			fb.Strategy = StrategyAreaOnly
		} else {
			fb.Strategy = StrategyDiverseSample
		}
	}

	if len(props) < relaxThreshold && len(conditions) > 0 {
		relaxedProps, relaxedFb := relaxedSearch(s.catalog.Properties(), c, areas, limit, now, s.rng)
		if len(props) > 0 {
			// Keep the exact rows first and top up with relaxed ones.
			seen := map[uint]bool{}
			for _, p := range props {
				seen[p.ID] = true
			}
			for _, rp := range relaxedProps {
				if len(props) >= limit {
					break
				}
				if !seen[rp.ID] {
					seen[rp.ID] = true
					props = append(props, rp)
				}
			}
			fb.Strategy = StrategyPartialMatch
			fb.RelaxedConditions = relaxedFb.RelaxedConditions
			fb.AdjustmentNeeded = relaxedFb.AdjustmentNeeded
			fb.Suggestion = relaxedFb.Suggestion
		} else {
			exact = false
			relaxedFb.MatchedAreas = fb.MatchedAreas
			relaxedFb.AreaMatchScores = fb.AreaMatchScores
			fb = relaxedFb
			props = relaxedProps
		}
	} else if !exact && c.Area != nil && len(props) > 0 {
		// Area resolved fuzzily; flag the other conditions so the caller
		// can explain what may have narrowed the results.
		if rest := withoutCondition(conditions, "area"); len(rest) > 0 {
			fb.RelaxedConditions = rest
			fb.AdjustmentNeeded, fb.Suggestion = adjustmentHint(rest)
		}
	}

	res := &Result{
		Properties: formatProperties(props),
		Count:      len(props),
		ExactMatch: exact,
		FuzzyMatch: len(areas) > 0,
		Feedback:   &fb,
	}
	if c.Area != nil {
		res.UserInputArea = *c.Area
	}
	res.Advice = buildAdvice(props, &fb, c, exact)
	return res
}

func (s *Service) areaNotFound(input string) *Result {
	samples := s.catalog.SortedAreas()
	if len(samples) > sampleAreaCount {
		samples = samples[:sampleAreaCount]
	}
	return &Result{
		Properties:    []PropertyRecord{},
		AreaNotFound:  true,
		UserInputArea: input,
		SampleAreas:   samples,
		Advice: fmt.Sprintf(
			"No properties found in '%s'. The area name might be misspelled or outside our coverage. Areas we do cover include: %s.",
			input, strings.Join(samples, ", ")),
	}
}

// buildAdvice composes the human-readable explanation of the results:
// what was shown, how the area resolved, how listings spread across areas,
// types and configurations, and what the user might adjust.
func buildAdvice(props []model.Property, fb *Feedback, c Criteria, exact bool) string {
	if len(props) == 0 {
		return "No properties found matching your criteria. Try adjusting your search parameters."
	}

	var b strings.Builder

	switch fb.Strategy {
	case StrategyRelaxedBudget:
		b.WriteString("Found properties by widening your budget range by about 20%. ")
	case StrategyRelaxedConfiguration:
		if c.Configurations != nil {
			fmt.Fprintf(&b, "Found properties by relaxing your %s requirement. ", *c.Configurations)
		} else {
			b.WriteString("Found properties by relaxing your configuration requirement. ")
		}
	case StrategyAreaOnly:
		if len(fb.RelaxedConditions) > 0 {
			b.WriteString("Your other preferences couldn't be matched exactly, so here is what's available in this area. ")
		}
	case StrategyDiverseSample:
		if len(c.Conditions()) > 0 {
			b.WriteString("Your preferences were very specific. Here's a diverse selection of properties to consider. ")
		}
	}

	if len(fb.MatchedAreas) > 0 {
		if exact || c.Area == nil {
			fmt.Fprintf(&b, "Showing %d properties in %s.", len(props), strings.Join(fb.MatchedAreas, ", "))
		} else {
			fmt.Fprintf(&b, "Showing %d properties in %s (matched from your search for '%s').",
				len(props), strings.Join(fb.MatchedAreas, ", "), *c.Area)
		}
	} else {
		fmt.Fprintf(&b, "Found %d properties matching your criteria.", len(props))
	}

	if line := topAreasLine(props); line != "" {
		b.WriteString(" " + line)
	}
	if line := typeBreakdownLine(props); line != "" {
		b.WriteString(" " + line)
	}
	if line := configBreakdownLine(props); line != "" {
		b.WriteString(" " + line)
	}
	if fb.Suggestion != "" {
		b.WriteString(" " + fb.Suggestion)
	}

	return b.String()
}

type labelCount struct {
	label string
	count int
}

// tally counts occurrences of a key, preserving first-seen order.
func tally(props []model.Property, key func(*model.Property) []string) []labelCount {
	index := map[string]int{}
	var counts []labelCount
	for i := range props {
		for _, label := range key(&props[i]) {
			if label == "" {
				continue
			}
			if at, ok := index[label]; ok {
				counts[at].count++
			} else {
				index[label] = len(counts)
				counts = append(counts, labelCount{label: label, count: 1})
			}
		}
	}
	return counts
}

func topAreasLine(props []model.Property) string {
	counts := tally(props, func(p *model.Property) []string { return []string{p.Area} })
	if len(counts) <= 1 {
		return ""
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].count > counts[j].count })
	if len(counts) > 3 {
		counts = counts[:3]
	}
	return "Top areas: " + joinCounts(counts) + "."
}

func typeBreakdownLine(props []model.Property) string {
	counts := tally(props, func(p *model.Property) []string { return []string{p.PropertyType} })
	if len(counts) <= 1 {
		return ""
	}
	return "Property types include: " + joinCounts(counts) + "."
}

func configBreakdownLine(props []model.Property) string {
	counts := tally(props, func(p *model.Property) []string { return p.ConfigurationNames() })
	if len(counts) == 0 {
		return ""
	}
	return "Configurations: " + joinCounts(counts) + "."
}

func joinCounts(counts []labelCount) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%s (%d)", c.label, c.count))
	}
	return strings.Join(parts, ", ")
}
