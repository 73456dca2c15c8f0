package request_models

import "time"

// CreateJourneyRequest is a journey payload that passed body validation.
type CreateJourneyRequest struct {
	DepartureDate time.Time        `json:"departure_date" example:"2025-02-24T16:40:58.000Z"`
	Pickup        LocationRequest  `json:"pickup"`
	Passenger     PassengerRequest `json:"passenger"`
}

type LocationRequest struct {
	Latitude  float64 `json:"latitude" example:"51.5"`
	Longitude float64 `json:"longitude" example:"-0.15"`
}

type PassengerRequest struct {
	Name        string  `json:"name" example:"Elton John"`
	PhoneNumber *string `json:"phone_number,omitempty" example:"90234"`
}
