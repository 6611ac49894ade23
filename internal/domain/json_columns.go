package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is stored as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value any) error {
	data, err := jsonBytes(value)
	if err != nil || data == nil {
		*l = StringList{}
		return err
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

// SeasonNotes maps a season name to a short climate description. Stored as a JSON object.
type SeasonNotes map[string]string

func (s SeasonNotes) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	data, err := json.Marshal(map[string]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (s *SeasonNotes) Scan(value any) error {
	data, err := jsonBytes(value)
	if err != nil || data == nil {
		*s = SeasonNotes{}
		return err
	}
	out := map[string]string{}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*s = out
	return nil
}

type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
}

// Itinerary is the ordered day-by-day plan of a package, stored as a JSON array.
type Itinerary []ItineraryDay

func (it Itinerary) Value() (driver.Value, error) {
	if it == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]ItineraryDay(it))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (it *Itinerary) Scan(value any) error {
	data, err := jsonBytes(value)
	if err != nil || data == nil {
		*it = Itinerary{}
		return err
	}
	var out []ItineraryDay
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if out == nil {
		out = []ItineraryDay{}
	}
	*it = out
	return nil
}

func jsonBytes(value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", value)
	}
}
