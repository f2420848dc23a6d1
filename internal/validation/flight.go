package validation

import (
	"fmt"
	"time"
)

const (
	flightDateLayout = "2006-01-02"
	flightTimeLayout = "15:04"
)

// FlightInput is the validated shape of a flight create/update payload.
// The owner is never part of the input; it is forced from the caller.
type FlightInput struct {
	GameID           int
	Airline          string
	DepartureAirport string
	ArrivalAirport   string
	DepartureDate    string
	DepartureTime    string
	IsReturn         bool
	ReturnDate       *string
	ReturnTime       *string
}

// ValidateFlight checks required fields, date/time formats and the return-leg
// pairing rule: return date and time must both be present when IsReturn is
// true, and both absent when it is false.
func ValidateFlight(in FlightInput) error {
	if in.GameID <= 0 {
		return fmt.Errorf("game_id is required")
	}
	if in.Airline == "" {
		return fmt.Errorf("airline is required")
	}
	if in.DepartureAirport == "" {
		return fmt.Errorf("departure_airport is required")
	}
	if in.ArrivalAirport == "" {
		return fmt.Errorf("arrival_airport is required")
	}
	if _, err := time.Parse(flightDateLayout, in.DepartureDate); err != nil {
		return fmt.Errorf("departure_date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(flightTimeLayout, in.DepartureTime); err != nil {
		return fmt.Errorf("departure_time must be in HH:MM format")
	}

	if in.IsReturn {
		if in.ReturnDate == nil || in.ReturnTime == nil {
			return fmt.Errorf("return time and date must be provided when is_return is true")
		}
		if _, err := time.Parse(flightDateLayout, *in.ReturnDate); err != nil {
			return fmt.Errorf("return_date must be in YYYY-MM-DD format")
		}
		if _, err := time.Parse(flightTimeLayout, *in.ReturnTime); err != nil {
			return fmt.Errorf("return_time must be in HH:MM format")
		}
		return nil
	}

	if in.ReturnDate != nil || in.ReturnTime != nil {
		return fmt.Errorf("return time and date should not be provided when is_return is false")
	}
	return nil
}
