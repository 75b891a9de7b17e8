package controller

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"gharbari_backend/internal/middleware"
	"gharbari_backend/internal/model"
	"gharbari_backend/internal/search"
	"gharbari_backend/pkg/database"
)

type TextSearchInput struct {
	Text string `json:"text"`
}

var searchService *search.Service

func InitSearchController(svc *search.Service) {
	searchService = svc
}

// SearchProperties runs a structured search. All criteria fields are
// optional; stored session preferences fill in the gaps.
func SearchProperties(c *fiber.Ctx) error {
	var criteria search.Criteria
	if err := c.BodyParser(&criteria); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid search criteria",
		})
	}

	sessionID := middleware.SessionID(c)
	started := time.Now()

	result, err := searchService.Search(criteria, sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	logSearch(sessionID, criteria, result, time.Since(started))
	return c.JSON(result)
}

// SearchByText extracts criteria from free text, then searches. Accepts
// both conversational queries and the compact semicolon dialect.
func SearchByText(c *fiber.Ctx) error {
	input := new(TextSearchInput)
	if err := c.BodyParser(input); err != nil || input.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Request body must include a non-empty 'text' field",
		})
	}

	sessionID := middleware.SessionID(c)
	started := time.Now()

	result, err := searchService.SearchText(input.Text, sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	logSearch(sessionID, search.Criteria{}, result, time.Since(started))
	return c.JSON(result)
}

// GetPreferences returns the stored preferences for the current session,
// formatted for display.
func GetPreferences(c *fiber.Ctx) error {
	summary, err := searchService.Preferences(middleware.SessionID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not load preferences",
		})
	}
	return c.JSON(summary)
}

// logSearch records the query for analytics. Logging is best effort; a
// failed insert never fails the search.
func logSearch(sessionID string, criteria search.Criteria, result *search.Result, took time.Duration) {
	db := database.GetDB()
	if db == nil {
		return
	}

	raw, err := json.Marshal(criteria)
	if err != nil {
		raw = []byte("{}")
	}

	entry := model.SearchLog{
		SessionID:   sessionID,
		Criteria:    datatypes.JSON(raw),
		ResultCount: result.Count,
		ExactMatch:  result.ExactMatch,
		DurationMs:  took.Milliseconds(),
	}
	if result.Feedback != nil {
		entry.Strategy = result.Feedback.Strategy
	}

	if err := db.Create(&entry).Error; err != nil {
		log.Printf("Could not record search log: %v", err)
	}
}
