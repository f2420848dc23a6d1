package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users?search=
// Returns users (with profiles) whose username contains the search substring,
// case-insensitive, always excluding the caller. No search returns everyone
// else.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))

	users, err := s.userRepo.Search(c.Context(), callerID(c), search)
	if err != nil {
		return respond(c, err)
	}

	return c.JSON(users)
}

// GetCurrentUser handles GET /api/users/current
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.Context(), callerID(c))
	if err != nil {
		return respond(c, err)
	}

	return c.JSON(user)
}
