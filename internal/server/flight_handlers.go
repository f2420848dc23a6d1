package server

import (
	"matchday/internal/models"
	"matchday/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// FlightRequest is the typed payload for flight create/update. It carries no
// owner field on purpose: the owner is always the authenticated caller.
type FlightRequest struct {
	GameID           int     `json:"game_id"`
	Airline          string  `json:"airline"`
	DepartureAirport string  `json:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport"`
	DepartureDate    string  `json:"departure_date"`
	DepartureTime    string  `json:"departure_time"`
	IsReturn         bool    `json:"is_return"`
	ReturnDate       *string `json:"return_date"`
	ReturnTime       *string `json:"return_time"`
	IsActive         *bool   `json:"is_active"`
}

func (r *FlightRequest) input() validation.FlightInput {
	return validation.FlightInput{
		GameID:           r.GameID,
		Airline:          r.Airline,
		DepartureAirport: r.DepartureAirport,
		ArrivalAirport:   r.ArrivalAirport,
		DepartureDate:    r.DepartureDate,
		DepartureTime:    r.DepartureTime,
		IsReturn:         r.IsReturn,
		ReturnDate:       r.ReturnDate,
		ReturnTime:       r.ReturnTime,
	}
}

// apply copies the validated payload onto the model. The owner field is never
// touched here.
func (r *FlightRequest) apply(f *models.Flight) {
	f.GameID = r.GameID
	f.Airline = r.Airline
	f.DepartureAirport = r.DepartureAirport
	f.ArrivalAirport = r.ArrivalAirport
	f.DepartureDate = r.DepartureDate
	f.DepartureTime = r.DepartureTime
	f.IsReturn = r.IsReturn
	f.ReturnDate = r.ReturnDate
	f.ReturnTime = r.ReturnTime
	if r.IsActive != nil {
		f.IsActive = *r.IsActive
	}
}

// GetFlights handles GET /api/flights
func (s *Server) GetFlights(c *fiber.Ctx) error {
	flights, err := s.flightRepo.ListByOwner(c.Context(), callerID(c))
	if err != nil {
		return respond(c, err)
	}
	return c.JSON(flights)
}

// GetFlight handles GET /api/flights/:id
func (s *Server) GetFlight(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	flight, getErr := s.flightRepo.GetForOwner(c.Context(), callerID(c), id)
	if getErr != nil {
		return respond(c, getErr)
	}
	return c.JSON(flight)
}

// CreateFlight handles POST /api/flights
func (s *Server) CreateFlight(c *fiber.Ctx) error {
	var req FlightRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateFlight(req.input()); err != nil {
		return respond(c, models.NewValidationError(err.Error()))
	}

	flight := &models.Flight{
		UserID:   callerID(c), // forced from the caller, payload cannot override
		IsActive: true,
	}
	req.apply(flight)

	if err := s.flightRepo.Create(c.Context(), flight); err != nil {
		return respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(flight)
}

// UpdateFlight handles PUT /api/flights/:id
func (s *Server) UpdateFlight(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req FlightRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if valErr := validation.ValidateFlight(req.input()); valErr != nil {
		return respond(c, models.NewValidationError(valErr.Error()))
	}

	// Scoped fetch: a foreign record reads as not found.
	flight, getErr := s.flightRepo.GetForOwner(c.Context(), callerID(c), id)
	if getErr != nil {
		return respond(c, getErr)
	}

	req.apply(flight)
	flight.UserID = callerID(c) // ownership is immutable

	if updateErr := s.flightRepo.Update(c.Context(), flight); updateErr != nil {
		return respond(c, updateErr)
	}

	return c.JSON(flight)
}

// DeleteFlight handles DELETE /api/flights/:id
func (s *Server) DeleteFlight(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if delErr := s.flightRepo.DeleteForOwner(c.Context(), callerID(c), id); delErr != nil {
		return respond(c, delErr)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
