package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StationID is the store-assigned identifier of a station: a BSON ObjectID,
// rendered on the wire as 24 lowercase hex characters.
type StationID = primitive.ObjectID

// NilStationID is the zero StationID. The store never assigns it.
var NilStationID = primitive.NilObjectID

// NewStationID returns a fresh identifier stamped with the current time.
func NewStationID() StationID {
	return primitive.NewObjectID()
}

func newStationIDAt(t time.Time) StationID {
	return primitive.NewObjectIDFromTimestamp(t)
}

// ParseStationID decodes a 24-character hex string.
// Any other input yields an error wrapping ErrInvalidID.
func ParseStationID(s string) (StationID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return NilStationID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}
