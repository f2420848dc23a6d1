package server

import (
	"matchday/internal/footballdata"
	"matchday/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMatches handles GET /api/matches?teamId=
// Proxies the scheduled-matches listing from football-data.org. The upstream
// body is passed through verbatim; failures become a 502 error envelope and
// are never retried.
func (s *Server) GetMatches(c *fiber.Ctx) error {
	teamID := c.QueryInt("teamId", footballdata.DefaultTeamID)
	if teamID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid team ID"))
	}

	body, err := s.football.ScheduledMatches(c.Context(), teamID)
	if err != nil {
		return respond(c, models.NewUpstreamError(err))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// GetMatch handles GET /api/matches/:matchId
func (s *Server) GetMatch(c *fiber.Ctx) error {
	matchID, err := s.parseID(c, "matchId")
	if err != nil {
		return nil
	}

	body, upErr := s.football.Match(c.Context(), int(matchID))
	if upErr != nil {
		return respond(c, models.NewUpstreamError(upErr))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
