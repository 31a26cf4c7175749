package model

import "time"

// Room represents a single bookable hotel room. Rooms are identified by
// their room number, which is assigned by the caller when the room is
// first configured and never changes afterwards. Type and price may be
// reconfigured in place at any time; bookings keep their own snapshot of
// both, so reconfiguration never rewrites history.
//
// Fields:
//  Number        – natural key of the room, unique across the hotel.
//  Type          – category of the room (STANDARD, JUNIOR, SUITE).
//  PricePerNight – price charged per night; never negative.
//  CreatedAt     – when the room was first configured. Updates do not
//                  touch this value.
type Room struct {
	Number        int
	Type          RoomType
	PricePerNight int64
	CreatedAt     time.Time
}
