package api

import (
	"fmt"
	"net/url"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

func (e *Endpoints) CreateJourney() string {
	return "/api/journeys/"
}

func (e *Endpoints) GetJourney(journeyID string) string {
	return fmt.Sprintf("/api/journeys/%s", url.PathEscape(journeyID))
}

func (e *Endpoints) Healthz() string {
	return "/healthz"
}
