// Package validators checks inbound payloads before they reach the services.
package validators

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"splyt/internal/models/request_models"
	"splyt/pkg/utils"
)

type valueKind int

const (
	kindString valueKind = iota
	kindNumber
)

func (k valueKind) String() string {
	if k == kindNumber {
		return "number"
	}
	return "string"
}

// FieldRule describes one field of a payload: where it lives, whether it must
// be present, what JSON kind it holds and the validator tag its value must pass.
type FieldRule struct {
	Path     string
	Required bool
	Kind     valueKind
	Tag      string
}

// departureTag accepts only strings that survive a parse and format round trip
// through utils.DepartureLayout.
const departureTag = "departure"

// JourneyRules is applied as a conjunction to every journey creation payload.
var JourneyRules = []FieldRule{
	{Path: "departure_date", Required: true, Kind: kindString, Tag: departureTag},
	{Path: "pickup.latitude", Required: true, Kind: kindNumber, Tag: "latitude"},
	{Path: "pickup.longitude", Required: true, Kind: kindNumber, Tag: "longitude"},
	{Path: "passenger.name", Required: true, Kind: kindString, Tag: "min=1"},
	// A journey may be booked without a phone number; it is refused on read.
	{Path: "passenger.phone_number", Required: false, Kind: kindString, Tag: "min=1"},
}

// FieldError names the rule that rejected a payload. It matches
// utils.ErrBodyValidation with errors.Is.
type FieldError struct {
	Path   string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return utils.ErrBodyValidation
}

type JourneyValidatorInterface interface {
	ValidateCreateJourney(body []byte) (*request_models.CreateJourneyRequest, error)
}

type JourneyValidator struct {
	validate *validator.Validate
	rules    []FieldRule
}

func NewJourneyValidator() JourneyValidatorInterface {
	return NewJourneyValidatorWithRules(JourneyRules)
}

func NewJourneyValidatorWithRules(rules []FieldRule) *JourneyValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = validate.RegisterValidation(departureTag, isDeparture)

	return &JourneyValidator{
		validate: validate,
		rules:    rules,
	}
}

func isDeparture(fl validator.FieldLevel) bool {
	_, err := utils.ParseDeparture(fl.Field().String())
	return err == nil
}

// ValidateCreateJourney decodes body as an untyped JSON object, applies every
// rule and returns the normalized request.
func (v *JourneyValidator) ValidateCreateJourney(body []byte) (*request_models.CreateJourneyRequest, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]interface{}
	if err := dec.Decode(&payload); err != nil {
		return nil, &FieldError{Path: "$", Reason: "body is not a JSON object"}
	}
	if payload == nil || dec.More() {
		return nil, &FieldError{Path: "$", Reason: "body is not a JSON object"}
	}

	values, err := v.Check(payload)
	if err != nil {
		return nil, err
	}

	// Check has already proven every required value is present and well formed.
	departure, err := utils.ParseDeparture(values["departure_date"].(string))
	if err != nil {
		return nil, &FieldError{Path: "departure_date", Reason: err.Error()}
	}

	out := &request_models.CreateJourneyRequest{
		DepartureDate: departure,
		Pickup: request_models.LocationRequest{
			Latitude:  values["pickup.latitude"].(float64),
			Longitude: values["pickup.longitude"].(float64),
		},
		Passenger: request_models.PassengerRequest{
			Name: values["passenger.name"].(string),
		},
	}
	if phone, ok := values["passenger.phone_number"].(string); ok {
		out.Passenger.PhoneNumber = &phone
	}
	return out, nil
}

// Check applies the rules to payload and returns the typed value of every
// field that was present, keyed by rule path.
func (v *JourneyValidator) Check(payload map[string]interface{}) (map[string]interface{}, error) {
	values := make(map[string]interface{}, len(v.rules))

	for _, rule := range v.rules {
		raw, ok := lookup(payload, rule.Path)
		if !ok || raw == nil {
			if rule.Required {
				return nil, &FieldError{Path: rule.Path, Reason: "is required"}
			}
			continue
		}

		value, ok := coerce(raw, rule.Kind)
		if !ok {
			return nil, &FieldError{Path: rule.Path, Reason: "must be a " + rule.Kind.String()}
		}

		if rule.Tag != "" {
			if err := v.validate.Var(value, rule.Tag); err != nil {
				return nil, &FieldError{Path: rule.Path, Reason: "failed '" + rule.Tag + "'"}
			}
		}

		values[rule.Path] = value
	}

	return values, nil
}

// lookup walks a dotted path through nested JSON objects.
func lookup(payload map[string]interface{}, path string) (interface{}, bool) {
	var current interface{} = payload
	for _, key := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func coerce(raw interface{}, kind valueKind) (interface{}, bool) {
	switch kind {
	case kindNumber:
		n, ok := raw.(json.Number)
		if !ok {
			return nil, false
		}
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	default:
		s, ok := raw.(string)
		return s, ok
	}
}
