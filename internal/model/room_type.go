package model

import "fmt"

// RoomType classifies a room into one of the fixed categories the hotel
// offers. It is a pure tag used for display and snapshots; pricing and
// availability live on Room and Booking.
type RoomType string

const (
	RoomTypeStandard RoomType = "STANDARD"
	RoomTypeJunior   RoomType = "JUNIOR"
	RoomTypeSuite    RoomType = "SUITE"
)

// DateLayout is the calendar-date format used throughout the system for
// textual check-in and check-out dates (day/month/year).
const DateLayout = "02/01/2006"

// ParseRoomType converts a textual room type, as found in configuration
// or seed data, into a RoomType. Unknown values are rejected.
func ParseRoomType(s string) (RoomType, error) {
	switch t := RoomType(s); t {
	case RoomTypeStandard, RoomTypeJunior, RoomTypeSuite:
		return t, nil
	}
	return "", fmt.Errorf("unknown room type %q", s)
}
