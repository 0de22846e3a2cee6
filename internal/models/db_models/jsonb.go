package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONB maps a jsonb column onto raw JSON. Document-shaped payloads
// (itineraries, packing lists, strike state) are stored opaquely; the
// service layer owns their schema.
type JSONB json.RawMessage

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return []byte(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = JSONB(v)
		return nil
	default:
		return errors.New("unsupported type for JSONB scan")
	}
}

func (j JSONB) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSONB) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}
