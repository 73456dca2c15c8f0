package api

import "strings"

// Payload is an untyped journey body, so fixtures can drop or corrupt any field.
type Payload map[string]interface{}

// EltonJohn returns a fully valid journey creation payload.
func EltonJohn() Payload {
	return Payload{
		"departure_date": "2025-02-24T16:40:58.000Z",
		"pickup": map[string]interface{}{
			"latitude":  51.5,
			"longitude": -0.15,
		},
		"passenger": map[string]interface{}{
			"name":         "Elton John",
			"phone_number": "90234",
		},
	}
}

// Without removes the field at a dotted path and returns p.
func (p Payload) Without(path string) Payload {
	parent, key := p.parent(path)
	if parent != nil {
		delete(parent, key)
	}
	return p
}

// With sets the field at a dotted path, creating objects as needed, and returns p.
func (p Payload) With(path string, value interface{}) Payload {
	keys := strings.Split(path, ".")
	current := map[string]interface{}(p)
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
	return p
}

func (p Payload) parent(path string) (map[string]interface{}, string) {
	keys := strings.Split(path, ".")
	current := map[string]interface{}(p)
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil, ""
		}
		current = next
	}
	return current, keys[len(keys)-1]
}
