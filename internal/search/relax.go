package search

import (
	"math/rand"
	"time"

	"gharbari_backend/internal/model"
)

// Strategy labels reported in feedback.
const (
	StrategyExactMatch           = "exact_match"
	StrategyAreaOnly             = "area_only"
	StrategyRelaxedBudget        = "relaxed_budget"
	StrategyRelaxedConfiguration = "relaxed_configuration"
	StrategyDiverseSample        = "diverse_sample"
	StrategyPartialMatch         = "partial_match_with_relaxed"
)

// Budget widening factors for the relaxed-budget strategy.
const (
	relaxMinBudgetFactor = 0.8
	relaxMaxBudgetFactor = 1.2
)

// Feedback explains how a result set was produced: which strategy fired,
// which of the original constraints were dropped or loosened, and what the
// user might adjust. Downstream presentation depends on it to explain why
// these results were returned instead of exact ones.
type Feedback struct {
	Strategy          string      `json:"strategy"`
	MatchedAreas      []string    `json:"matched_areas,omitempty"`
	AreaMatchScores   []AreaMatch `json:"area_match_scores,omitempty"`
	RelaxedConditions []string    `json:"relaxed_conditions,omitempty"`
	AdjustmentNeeded  string      `json:"adjustment_needed,omitempty"`
	Suggestion        string      `json:"suggestion,omitempty"`
}

// relaxedSearch runs the fallback strategies in priority order and stops at
// the first that yields results. areas is the pre-resolved canonical area
// set from the original query. Deterministic except for the final
// diverse-sample fill, which may shuffle the remainder.
func relaxedSearch(props []model.Property, c Criteria, areas []string, limit int, now time.Time, rng *rand.Rand) ([]model.Property, Feedback) {
	// Strategy 1: keep the matched area, drop everything else.
	if c.Area != nil && len(areas) > 0 {
		areaProps := executeQuery(props, Criteria{}, areas, 0, now)
		if len(areaProps) > 0 {
			dropped := withoutCondition(c.Conditions(), "area")
			fb := Feedback{
				Strategy:          StrategyAreaOnly,
				RelaxedConditions: dropped,
			}
			fb.AdjustmentNeeded, fb.Suggestion = adjustmentHint(dropped)
			return diverseSample(areaProps, limit, nil), fb
		}
	}

	// Strategy 2: widen the budget, keep everything else.
	if c.MinBudget != nil || c.MaxBudget != nil {
		relaxed := c
		if relaxed.MinBudget != nil {
			relaxed.MinBudget = floatPtr(*relaxed.MinBudget * relaxMinBudgetFactor)
		}
		if relaxed.MaxBudget != nil {
			relaxed.MaxBudget = floatPtr(*relaxed.MaxBudget * relaxMaxBudgetFactor)
		}
		if results := executeQuery(props, relaxed, areas, limit, now); len(results) > 0 {
			return results, Feedback{
				Strategy:          StrategyRelaxedBudget,
				RelaxedConditions: budgetConditions(c),
				AdjustmentNeeded:  "budget",
				Suggestion:        "Consider widening your budget range; nearby options fall just outside it.",
			}
		}
	}

	// Strategy 3: drop the configuration constraint entirely.
	if c.Configurations != nil {
		relaxed := c
		relaxed.Configurations = nil
		if results := executeQuery(props, relaxed, areas, limit, now); len(results) > 0 {
			return results, Feedback{
				Strategy:          StrategyRelaxedConfiguration,
				RelaxedConditions: []string{"configurations"},
				AdjustmentNeeded:  "configurations",
				Suggestion:        "Consider other configurations; your requested one is scarce with these filters.",
			}
		}
	}

	// Strategy 4: last resort, a diverse sample from the whole catalog.
	return diverseSample(props, limit, rng), Feedback{
		Strategy:          StrategyDiverseSample,
		RelaxedConditions: c.Conditions(),
	}
}

// diverseSample picks up to n properties spreading across distinct areas
// first, then distinct property types, then distinct configuration sets,
// topping up with the remaining rows. With a non-nil rng the top-up portion
// is shuffled; the diversity passes stay deterministic.
func diverseSample(props []model.Property, n int, rng *rand.Rand) []model.Property {
	if n <= 0 || len(props) <= n {
		return props
	}

	picked := make([]bool, len(props))
	var sample []model.Property

	take := func(i int) {
		picked[i] = true
		sample = append(sample, props[i])
	}

	seenAreas := map[string]bool{}
	for i, p := range props {
		if len(sample) >= n {
			return sample
		}
		if !seenAreas[p.Area] {
			seenAreas[p.Area] = true
			take(i)
		}
	}

	seenTypes := map[string]bool{}
	for i, p := range props {
		if len(sample) >= n {
			return sample
		}
		if !picked[i] && !seenTypes[p.PropertyType] {
			seenTypes[p.PropertyType] = true
			take(i)
		}
	}

	seenConfigs := map[string]bool{}
	for i, p := range props {
		if len(sample) >= n {
			return sample
		}
		sig := p.ConfigurationLabel()
		if !picked[i] && !seenConfigs[sig] {
			seenConfigs[sig] = true
			take(i)
		}
	}

	var rest []int
	for i := range props {
		if !picked[i] {
			rest = append(rest, i)
		}
	}
	if rng != nil {
		rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	}
	for _, i := range rest {
		if len(sample) >= n {
			break
		}
		take(i)
	}
	return sample
}

func withoutCondition(conds []string, drop string) []string {
	var out []string
	for _, c := range conds {
		if c != drop {
			out = append(out, c)
		}
	}
	return out
}

func budgetConditions(c Criteria) []string {
	var conds []string
	if c.MinBudget != nil {
		conds = append(conds, "min_budget")
	}
	if c.MaxBudget != nil {
		conds = append(conds, "max_budget")
	}
	return conds
}

// adjustmentHint maps the dropped conditions to the preference most worth
// revisiting, mirroring the priority budget > configurations.
func adjustmentHint(dropped []string) (string, string) {
	for _, d := range dropped {
		if d == "min_budget" || d == "max_budget" {
			return "budget", "Consider adjusting your budget to match more properties in this area."
		}
	}
	for _, d := range dropped {
		if d == "configurations" {
			return "configurations", "Consider other configurations available in this area."
		}
	}
	return "", ""
}
