package response_models

// JourneyResponse is the wire form of a stored journey. Its key set is part of
// the API contract: _id, pickup, departure_date, passenger.
type JourneyResponse struct {
	ID            string            `json:"_id"`
	Pickup        LocationResponse  `json:"pickup"`
	DepartureDate string            `json:"departure_date"`
	Passenger     PassengerResponse `json:"passenger"`
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PassengerResponse struct {
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
