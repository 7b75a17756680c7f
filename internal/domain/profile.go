package domain

import (
	"time"

	"github.com/google/uuid"
)

// TravelProfile is a saved trip configuration.
// University is the identity the store dedupes on: saving a profile for a
// university that already has one replaces it.
type TravelProfile struct {
	ID          uuid.UUID         `json:"id"`
	University  string            `json:"university"`
	LastUpdated time.Time         `json:"lastUpdated"`
	Data        TripConfiguration `json:"data"`
}
