package repository

import (
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// BookingStore keeps every recorded booking in memory. The store is
// append only: bookings are never updated or deleted once recorded.
// Insertion order matches record-time order, so listings newest first
// come straight off the slice.
type BookingStore struct {
	all []*model.Booking
}

// NewBookingStore returns an empty BookingStore.
func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

// Append records a booking. The service assigns booking IDs; the store
// only keeps what it is given.
func (s *BookingStore) Append(b *model.Booking) {
	s.all = append(s.all, b)
}

// ListByRoom returns value copies of all bookings for the given room in
// record order. It is used for the availability scan when a new booking
// is attempted.
func (s *BookingStore) ListByRoom(roomNumber int) []model.Booking {
	var out []model.Booking
	for _, b := range s.all {
		if b.RoomNumber == roomNumber {
			out = append(out, *b)
		}
	}
	return out
}

// List returns value copies of all bookings ordered by record time
// descending.
func (s *BookingStore) List() []model.Booking {
	out := make([]model.Booking, 0, len(s.all))
	for i := len(s.all) - 1; i >= 0; i-- {
		out = append(out, *s.all[i])
	}
	return out
}

// Len returns the number of recorded bookings.
func (s *BookingStore) Len() int { return len(s.all) }
