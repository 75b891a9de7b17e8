package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gharbari_backend/internal/middleware"
	"gharbari_backend/internal/model"
	"gharbari_backend/internal/search"
	"gharbari_backend/pkg/catalog"
	"gharbari_backend/pkg/prefs"
)

func testApp() *fiber.App {
	mk := func(id uint, name, area, ptype string, minSize, maxSize, price int, configs ...string) model.Property {
		p := model.Property{
			ProjectName:    name,
			Area:           area,
			PropertyType:   ptype,
			MinSizeSqft:    minSize,
			MaxSizeSqft:    maxSize,
			PricePerSqft:   price,
			PossessionDate: "Ready to Move",
		}
		p.ID = id
		for _, c := range configs {
			p.Configurations = append(p.Configurations, model.Configuration{Name: c})
		}
		return p
	}
	cat := catalog.New([]model.Property{
		mk(1, "Sky Towers", "Gachibowli", "Apartment", 1200, 1800, 6000, "2BHK", "3BHK"),
		mk(2, "Lake Vista", "Gachibowli", "Apartment", 1500, 2200, 7000, "3BHK"),
		mk(3, "Palm Meadows", "Kokapet", "Villa", 2500, 4000, 9000, "4BHK"),
	})

	svc := search.NewService(cat, prefs.NewMemoryStore(), search.NewRuleExtractor(), 10)
	InitSearchController(svc)
	InitCatalogController(cat)
	InitSessionController()

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/session", CreateSession)
	routes := api.Group("/", middleware.SessionMiddleware())
	routes.Post("/search", SearchProperties)
	routes.Post("/search/text", SearchByText)
	routes.Get("/preferences", GetPreferences)
	api.Get("/catalog/areas", GetAreas)
	api.Get("/catalog/price-range", GetPriceRange)
	return app
}

func TestSearchEndpoint(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/api/search", strings.NewReader(`{"area":"Gachibowli"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result search.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.ExactMatch)
	assert.Equal(t, 2, result.Count)
}

func TestSearchEndpointBadBody(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/api/search", strings.NewReader(`{bad json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSearchTextEndpoint(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/api/search/text", strings.NewReader(`{"text":"villas in Kokapet"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result search.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.NotEmpty(t, result.Properties)
	assert.Equal(t, "Palm Meadows", result.Properties[0].Name)
}

func TestSearchTextEndpointRequiresText(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/api/search/text", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPreferencesFlowThroughSessionHeader(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/api/search", strings.NewReader(`{"area":"Gachibowli","max_budget":10000000}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "sess-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/preferences", nil)
	req.Header.Set("X-Session-ID", "sess-1")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary search.PreferenceSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.True(t, summary.HasPreferences)
	assert.Equal(t, "Gachibowli", summary.Preferences["area"])
}

func TestCreateSessionEndpoint(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/api/session", strings.NewReader(`{"channel":"web"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["session_id"])
	assert.NotEmpty(t, body["token"])

	// The issued token must resolve back to the same session.
	req = httptest.NewRequest("GET", "/api/preferences", nil)
	req.Header.Set("Authorization", "Bearer "+body["token"])
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCatalogEndpoints(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/catalog/areas", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var areas struct {
		Areas []string `json:"areas"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&areas))
	assert.Equal(t, []string{"Gachibowli", "Kokapet"}, areas.Areas)
	assert.Equal(t, 2, areas.Count)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/catalog/price-range", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var prices struct {
		Min float64 `json:"min_total_price"`
		Max float64 `json:"max_total_price"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&prices))
	assert.Equal(t, 7_200_000.0, prices.Min)
	assert.Equal(t, 36_000_000.0, prices.Max)
}
