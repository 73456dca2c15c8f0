package db_models

import (
	"time"

	"splyt/internal/models/response_models"
	"splyt/pkg/utils"
)

type Journey struct {
	BaseModel
	DepartureDate time.Time `gorm:"not null"`
	Pickup        Location  `gorm:"embedded;embeddedPrefix:pickup_"`
	Passenger     Passenger `gorm:"embedded;embeddedPrefix:passenger_"`
}

type Location struct {
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

type Passenger struct {
	Name        string  `gorm:"not null"`
	PhoneNumber *string
}

// HasPhoneNumber reports whether the passenger can be contacted.
func (j *Journey) HasPhoneNumber() bool {
	return j.Passenger.PhoneNumber != nil && *j.Passenger.PhoneNumber != ""
}

// Clone returns a deep copy so callers never share the phone number pointer.
func (j *Journey) Clone() *Journey {
	out := *j
	if j.Passenger.PhoneNumber != nil {
		phone := *j.Passenger.PhoneNumber
		out.Passenger.PhoneNumber = &phone
	}
	return &out
}

func BuildJourneyResponse(j *Journey) *response_models.JourneyResponse {
	out := &response_models.JourneyResponse{
		ID:            j.ID,
		DepartureDate: utils.FormatDeparture(j.DepartureDate),
		Pickup: response_models.LocationResponse{
			Latitude:  j.Pickup.Latitude,
			Longitude: j.Pickup.Longitude,
		},
		Passenger: response_models.PassengerResponse{
			Name: j.Passenger.Name,
		},
	}
	if j.Passenger.PhoneNumber != nil {
		phone := *j.Passenger.PhoneNumber
		out.Passenger.PhoneNumber = &phone
	}
	return out
}
