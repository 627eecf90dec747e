package domain

import (
	"errors"
	"time"
)

// ErrEmptyCoolerFields is returned when a reading's name or tds value is
// empty after trimming.
var ErrEmptyCoolerFields = errors.New("name and tds value are required")

// WaterCooler holds the latest water-quality reading for one cooler.
//
// Name uniquely identifies a cooler (e.g. "T1".."T20"). TDS is stored as an
// opaque string: usually a numeric reading, sometimes a maintenance note.
// Records are created implicitly on first admin write (upsert by name) and
// never deleted through the public contract. A configured name with no record
// is a valid state, not an error.
type WaterCooler struct {
	ID          string    `json:"id" bson:"-"`
	Name        string    `json:"name" bson:"name"`
	TDS         string    `json:"tds" bson:"tds"`
	LastUpdated time.Time `json:"lastUpdated" bson:"lastUpdated"`
}
