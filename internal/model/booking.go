package model

import "time"

// Booking records a successful stay reservation. Bookings are append
// only: once recorded they are never updated or deleted, and their ID is
// never reused. A booking references its user and room by key but also
// carries value snapshots of the room's type and price and the user's
// balance after the deduction, so reconfiguring a room or user later
// never alters a recorded booking.
//
// Fields:
//  ID               – service-assigned surrogate key, strictly
//                     increasing from 1.
//  UserID           – user who booked the stay.
//  RoomNumber       – room being booked.
//  CheckIn          – first night of the stay (date only, UTC midnight).
//  CheckOut         – departure date (date only, UTC midnight); always
//                     strictly after CheckIn.
//  Nights           – whole-day length of the stay.
//  TotalCost        – Nights times the room's price at booking time.
//  CreatedAt        – when the booking was recorded; unrelated to the
//                     stay dates.
//  RoomType         – snapshot of the room's type at booking time.
//  RoomPrice        – snapshot of the room's per-night price at booking
//                     time.
//  UserBalanceAfter – snapshot of the user's balance after the cost was
//                     deducted.
type Booking struct {
	ID         int
	UserID     int
	RoomNumber int
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	TotalCost  int64
	CreatedAt  time.Time

	RoomType         RoomType
	RoomPrice        int64
	UserBalanceAfter int64
}

// Overlaps reports whether the booking's stay conflicts with the given
// interval. Stays are half-open [CheckIn, CheckOut): a stay ending on
// day X never conflicts with a stay starting on day X, so same-day
// back-to-back turnover is allowed.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}
