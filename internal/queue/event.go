// Package queue defines message payloads exchanged over the message
// broker and the publisher that emits them.
package queue

// BookingConfirmedEvent is published when a booking is successfully
// recorded. It carries enough information for downstream consumers to
// log, notify or run analytics without querying the reservation service.
// Dates are rendered in the system's day/month/year layout.
type BookingConfirmedEvent struct {
	BookingID    int    `json:"booking_id"`
	UserID       int    `json:"user_id"`
	RoomNumber   int    `json:"room_number"`
	RoomType     string `json:"room_type"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	Nights       int    `json:"nights"`
	TotalCost    int64  `json:"total_cost"`
	BalanceAfter int64  `json:"balance_after"`
	ConfirmedAt  string `json:"confirmed_at"`
}
