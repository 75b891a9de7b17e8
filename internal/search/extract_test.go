package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gharbari_backend/internal/model"
)

func TestExtractCompact(t *testing.T) {
	e := NewRuleExtractor()

	c := e.Extract("5cr;ready;gachibowli;3bhk")

	require.NotNil(t, c.MaxBudget)
	assert.Equal(t, 50_000_000.0, *c.MaxBudget)
	require.NotNil(t, c.PossessionDate)
	assert.Equal(t, model.PossessionReadyToMove, *c.PossessionDate)
	require.NotNil(t, c.Area)
	assert.Equal(t, "gachibowli", *c.Area)
	require.NotNil(t, c.Configurations)
	assert.Equal(t, "3BHK", *c.Configurations)
}

func TestExtractCompactLakhsAndType(t *testing.T) {
	e := NewRuleExtractor()

	c := e.Extract("80lakh;villa;kokapet")

	require.NotNil(t, c.MaxBudget)
	assert.Equal(t, 8_000_000.0, *c.MaxBudget)
	require.NotNil(t, c.PropertyType)
	assert.Equal(t, "Villa", *c.PropertyType)
	require.NotNil(t, c.Area)
	assert.Equal(t, "kokapet", *c.Area)
}

func TestExtractCompactBareRupees(t *testing.T) {
	e := NewRuleExtractor()

	c := e.Extract("7500000;flat")

	require.NotNil(t, c.MaxBudget)
	assert.Equal(t, 7_500_000.0, *c.MaxBudget)
	require.NotNil(t, c.PropertyType)
	assert.Equal(t, "Apartment", *c.PropertyType)
	assert.Nil(t, c.Area, "a large bare number must not be mistaken for an area")
}

func TestExtractCompactSmallNumberIgnored(t *testing.T) {
	e := NewRuleExtractor()

	c := e.Extract("500;miyapur")

	assert.Nil(t, c.MaxBudget)
	require.NotNil(t, c.Area)
	assert.Equal(t, "miyapur", *c.Area)
}

func TestExtractNaturalFullQuery(t *testing.T) {
	e := NewRuleExtractor()

	c := e.Extract("3BHK apartment in Banjara Hills under 2 crore")

	require.NotNil(t, c.Area)
	assert.Equal(t, "Banjara Hills", *c.Area)
	require.NotNil(t, c.PropertyType)
	assert.Equal(t, "Apartment", *c.PropertyType)
	require.NotNil(t, c.Configurations)
	assert.Equal(t, "3BHK", *c.Configurations)
	require.NotNil(t, c.MaxBudget)
	assert.Equal(t, 20_000_000.0, *c.MaxBudget)
	assert.Nil(t, c.MinBudget)
}

func TestExtractNaturalMinBudget(t *testing.T) {
	e := NewRuleExtractor()

	c := e.Extract("villas above 1.5 cr in Kokapet")

	require.NotNil(t, c.MinBudget)
	assert.Equal(t, 15_000_000.0, *c.MinBudget)
	assert.Nil(t, c.MaxBudget)
	require.NotNil(t, c.PropertyType)
	assert.Equal(t, "Villa", *c.PropertyType)
	require.NotNil(t, c.Area)
	assert.Equal(t, "Kokapet", *c.Area)
}

func TestExtractNaturalUnqualifiedBudgetIsCeiling(t *testing.T) {
	e := NewRuleExtractor()

	c := e.Extract("2 crore budget for a flat")

	require.NotNil(t, c.MaxBudget)
	assert.Equal(t, 20_000_000.0, *c.MaxBudget)
	assert.Nil(t, c.MinBudget)
}

func TestExtractNaturalPossession(t *testing.T) {
	e := NewRuleExtractor()

	ready := e.Extract("ready to move flats in Miyapur")
	require.NotNil(t, ready.PossessionDate)
	assert.Equal(t, model.PossessionReadyToMove, *ready.PossessionDate)
	require.NotNil(t, ready.Area)
	assert.Equal(t, "Miyapur", *ready.Area)

	uc := e.Extract("under construction projects in Kokapet")
	require.NotNil(t, uc.PossessionDate)
	assert.Equal(t, model.PossessionUnderConstruction, *uc.PossessionDate)
}

func TestExtractNaturalLocalitySuffixWithoutPreposition(t *testing.T) {
	e := NewRuleExtractor()

	c := e.Extract("show me LB Nagar options")

	require.NotNil(t, c.Area)
	assert.Equal(t, "LB Nagar", *c.Area)
}

func TestExtractNoSignal(t *testing.T) {
	e := NewRuleExtractor()

	c := e.Extract("hello there")

	assert.True(t, c.IsEmpty())
}
