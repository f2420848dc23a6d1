package server

import (
	"matchday/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AttendanceRequest is the typed payload for attendance create/update.
// Like FlightRequest, it has no owner field.
type AttendanceRequest struct {
	GameID int `json:"game_id"`
}

// GetAttendances handles GET /api/attendances
func (s *Server) GetAttendances(c *fiber.Ctx) error {
	attendances, err := s.attendanceRepo.ListByOwner(c.Context(), callerID(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(attendances)
}

// GetAttendance handles GET /api/attendances/:id
func (s *Server) GetAttendance(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	attendance, getErr := s.attendanceRepo.GetForOwner(c.Context(), callerID(c), id)
	if getErr != nil {
		return respond(c, getErr)
	}
	return c.JSON(attendance)
}

// CreateAttendance handles POST /api/attendances
func (s *Server) CreateAttendance(c *fiber.Ctx) error {
	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.GameID <= 0 {
		return respond(c, models.NewValidationError("game_id is required"))
	}

	attendance := &models.Attendance{
		UserID: callerID(c), // forced from the caller
		GameID: req.GameID,
	}
	if err := s.attendanceRepo.Create(c.Context(), attendance); err != nil {
		return respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(attendance)
}

// UpdateAttendance handles PUT /api/attendances/:id
func (s *Server) UpdateAttendance(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req AttendanceRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.GameID <= 0 {
		return respond(c, models.NewValidationError("game_id is required"))
	}

	attendance, getErr := s.attendanceRepo.GetForOwner(c.Context(), callerID(c), id)
	if getErr != nil {
		return respond(c, getErr)
	}

	attendance.GameID = req.GameID
	attendance.UserID = callerID(c) // ownership is immutable

	if updateErr := s.attendanceRepo.Update(c.Context(), attendance); updateErr != nil {
		return respond(c, updateErr)
	}

	return c.JSON(attendance)
}

// DeleteAttendance handles DELETE /api/attendances/:id
func (s *Server) DeleteAttendance(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if delErr := s.attendanceRepo.DeleteForOwner(c.Context(), callerID(c), id); delErr != nil {
		return respond(c, delErr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
