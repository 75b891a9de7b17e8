package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gharbari_backend/pkg/utils/jwt"
)

type SessionInput struct {
	Channel string `json:"channel"`
}

func InitSessionController() {}

// CreateSession issues a fresh conversation session: a random id plus a
// signed token the client sends back on subsequent searches.
func CreateSession(c *fiber.Ctx) error {
	input := new(SessionInput)
	c.BodyParser(input) // body is optional

	sessionID := uuid.NewString()

	token, err := jwt.GenerateSessionToken(sessionID, input.Channel)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create session",
		})
	}

	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"token":      token,
	})
}
