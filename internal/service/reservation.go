// Package service implements the booking engine: the rules that decide
// whether a booking attempt succeeds and the bookkeeping that follows a
// successful attempt. All state lives in the stores owned by the
// ReservationService; callers interact only through its methods.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// ErrNegativePrice is returned by ConfigureRoom when the per-night
// price is negative. The room collection is left untouched.
var ErrNegativePrice = errors.New("room price cannot be negative")

// ErrNegativeBalance is returned by ConfigureUser when the balance is
// negative. The user collection is left untouched.
var ErrNegativeBalance = errors.New("user balance cannot be negative")

// ErrInvalidDateRange is returned by BookRoom when check-in is not
// strictly before check-out.
var ErrInvalidDateRange = errors.New("invalid date range: check-in must be before check-out")

// ErrInsufficientBalance is returned by BookRoom when the total cost of
// the stay exceeds the user's balance. The wrapped message reports the
// required and available amounts.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrRoomUnavailable is returned by BookRoom when the requested period
// overlaps an existing booking for the same room.
var ErrRoomUnavailable = errors.New("room not available")

// EventPublisher emits a confirmation event after a booking has been
// recorded. Publishing is best effort: errors are logged and never fail
// the booking. A nil publisher disables events entirely.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error
}

// ReservationService is the sole owner of the room, user and booking
// collections plus the next-booking-id counter. Every mutating and
// query operation of the system goes through it. The service assumes a
// single caller at a time; BookRoom runs a check-then-act sequence that
// must not be interleaved.
type ReservationService struct {
	rooms    *repository.RoomStore
	users    *repository.UserStore
	bookings *repository.BookingStore

	publisher     EventPublisher
	nextBookingID int
}

// NewReservationService constructs a ReservationService over the given
// stores. All stores must be non-nil; the publisher may be nil.
func NewReservationService(rooms *repository.RoomStore, users *repository.UserStore, bookings *repository.BookingStore, publisher EventPublisher) *ReservationService {
	if rooms == nil || users == nil || bookings == nil {
		panic("nil store passed to NewReservationService")
	}
	return &ReservationService{
		rooms:         rooms,
		users:         users,
		bookings:      bookings,
		publisher:     publisher,
		nextBookingID: 1,
	}
}

// ConfigureRoom creates the room with the given number or, when it
// already exists, updates its type and price in place. The creation
// timestamp is set once and never touched by updates. It returns true
// when a new room was created and false when an existing one was
// updated.
func (s *ReservationService) ConfigureRoom(number int, roomType model.RoomType, pricePerNight int64) (bool, error) {
	if pricePerNight < 0 {
		return false, fmt.Errorf("%w: got %d", ErrNegativePrice, pricePerNight)
	}
	room, err := s.rooms.Get(number)
	switch {
	case err == nil:
		room.Type = roomType
		room.PricePerNight = pricePerNight
		return false, nil
	case errors.Is(err, repository.ErrRoomNotFound):
		s.rooms.Insert(&model.Room{
			Number:        number,
			Type:          roomType,
			PricePerNight: pricePerNight,
			CreatedAt:     time.Now().UTC(),
		})
		return true, nil
	default:
		return false, err
	}
}

// ConfigureUser creates the user with the given ID or, when it already
// exists, resets its balance in place. It returns true when a new user
// was created and false when an existing one was updated.
func (s *ReservationService) ConfigureUser(id int, balance int64) (bool, error) {
	if balance < 0 {
		return false, fmt.Errorf("%w: got %d", ErrNegativeBalance, balance)
	}
	user, err := s.users.Get(id)
	switch {
	case err == nil:
		user.Balance = balance
		return false, nil
	case errors.Is(err, repository.ErrUserNotFound):
		s.users.Insert(&model.User{
			ID:        id,
			Balance:   balance,
			CreatedAt: time.Now().UTC(),
		})
		return true, nil
	default:
		return false, err
	}
}

// BookRoom attempts to book a room for a user over [checkIn, checkOut).
// Checks run in order and the first failure ends the attempt with no
// state change: date validity, user existence, room existence, balance
// sufficiency against nights times the per-night price, and room
// availability. On success the cost is deducted from the user's
// balance, the next booking ID is assigned and a booking with value
// snapshots of the room and the post-deduction balance is recorded.
//
// Check-in and check-out are normalized to date-only values (UTC
// midnight) before any check, so a sub-day difference can never floor
// to a free zero-night stay.
func (s *ReservationService) BookRoom(ctx context.Context, userID, roomNumber int, checkIn, checkOut time.Time) (*model.Booking, error) {
	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidDateRange,
			checkIn.Format(model.DateLayout), checkOut.Format(model.DateLayout))
	}

	user, err := s.users.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", userID, err)
	}
	room, err := s.rooms.Get(roomNumber)
	if err != nil {
		return nil, fmt.Errorf("room %d: %w", roomNumber, err)
	}

	nights := wholeNights(checkIn, checkOut)
	totalCost := int64(nights) * room.PricePerNight
	if user.Balance < totalCost {
		return nil, fmt.Errorf("%w: required %d, available %d", ErrInsufficientBalance, totalCost, user.Balance)
	}

	for _, existing := range s.bookings.ListByRoom(roomNumber) {
		if existing.Overlaps(checkIn, checkOut) {
			return nil, fmt.Errorf("%w: room %d is already booked for the requested period", ErrRoomUnavailable, roomNumber)
		}
	}

	user.Balance -= totalCost
	booking := &model.Booking{
		ID:         s.nextBookingID,
		UserID:     userID,
		RoomNumber: roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     nights,
		TotalCost:  totalCost,
		CreatedAt:  time.Now().UTC(),

		RoomType:         room.Type,
		RoomPrice:        room.PricePerNight,
		UserBalanceAfter: user.Balance,
	}
	s.nextBookingID++
	s.bookings.Append(booking)

	if s.publisher != nil {
		event := confirmedEvent(booking)
		if err := s.publisher.PublishBookingConfirmed(ctx, event); err != nil {
			logrus.WithError(err).WithField("booking_id", booking.ID).
				Warn("booking confirmed event not published")
		}
	}

	out := *booking
	return &out, nil
}

// ListRooms returns snapshots of all rooms ordered by creation time
// descending.
func (s *ReservationService) ListRooms() []model.Room { return s.rooms.List() }

// ListUsers returns snapshots of all users ordered by creation time
// descending.
func (s *ReservationService) ListUsers() []model.User { return s.users.List() }

// ListBookings returns snapshots of all bookings ordered by record time
// descending.
func (s *ReservationService) ListBookings() []model.Booking { return s.bookings.List() }

// wholeNights returns the whole-day difference between two date-only
// values. Both arguments are UTC midnights, so the division is exact.
func wholeNights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// truncateToDay strips any time-of-day component, anchoring the value
// at UTC midnight of its calendar date.
func truncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// confirmedEvent renders a recorded booking into its broker payload.
func confirmedEvent(b *model.Booking) queue.BookingConfirmedEvent {
	return queue.BookingConfirmedEvent{
		BookingID:    b.ID,
		UserID:       b.UserID,
		RoomNumber:   b.RoomNumber,
		RoomType:     string(b.RoomType),
		CheckIn:      b.CheckIn.Format(model.DateLayout),
		CheckOut:     b.CheckOut.Format(model.DateLayout),
		Nights:       b.Nights,
		TotalCost:    b.TotalCost,
		BalanceAfter: b.UserBalanceAfter,
		ConfirmedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}
