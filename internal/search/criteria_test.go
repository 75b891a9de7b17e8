package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaIsEmptyAndAreaOnly(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.False(t, Criteria{}.AreaOnly())

	areaOnly := Criteria{Area: strPtr("Kokapet")}
	assert.False(t, areaOnly.IsEmpty())
	assert.True(t, areaOnly.AreaOnly())

	withBudget := Criteria{Area: strPtr("Kokapet"), MaxBudget: floatPtr(1)}
	assert.False(t, withBudget.AreaOnly())
}

func TestCriteriaConditionsOrder(t *testing.T) {
	c := Criteria{
		Area:           strPtr("Kokapet"),
		MaxBudget:      floatPtr(5_000_000),
		Configurations: strPtr("2BHK"),
	}
	assert.Equal(t, []string{"area", "max_budget", "configurations"}, c.Conditions())
	assert.Empty(t, Criteria{}.Conditions())
}

func TestCriteriaMergedWith(t *testing.T) {
	base := Criteria{Area: strPtr("Kokapet"), MaxBudget: floatPtr(5_000_000)}
	incoming := Criteria{Area: strPtr("Miyapur"), Configurations: strPtr("2BHK")}

	merged := incoming.MergedWith(base)

	require.NotNil(t, merged.Area)
	assert.Equal(t, "Miyapur", *merged.Area, "incoming values win")
	require.NotNil(t, merged.MaxBudget)
	assert.Equal(t, 5_000_000.0, *merged.MaxBudget, "unset fields fall back to base")
	require.NotNil(t, merged.Configurations)
	assert.Equal(t, "2BHK", *merged.Configurations)
}

func TestCriteriaPreferenceRoundTrip(t *testing.T) {
	c := Criteria{
		Area:           strPtr("Kokapet"),
		PropertyType:   strPtr("Villa"),
		MinBudget:      floatPtr(10_000_000),
		Configurations: strPtr("4BHK"),
	}

	pref := c.Preference("s1")
	assert.Equal(t, "s1", pref.SessionID)

	back := CriteriaFromPreference(&pref)
	assert.Equal(t, c, back)
}

func TestCriteriaFromNilPreference(t *testing.T) {
	assert.True(t, CriteriaFromPreference(nil).IsEmpty())
}
