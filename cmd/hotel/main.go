// Command hotel replays the seed scenario from config/config.yml
// against the reservation service and prints the resulting rooms,
// bookings and users newest first. All presentation lives here; the
// service only returns values and errors.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env overrides

	v, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("cannot load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.Fatalf("cannot parse config: %v", err)
	}
	setupLogger(cfg.Logger)

	var publisher service.EventPublisher
	if cfg.Queue.Enabled {
		publisher = queue.NewPublisher(config.GetEnv("AMQP_URL", cfg.Queue.URL))
	}

	svc := service.NewReservationService(
		repository.NewRoomStore(),
		repository.NewUserStore(),
		repository.NewBookingStore(),
		publisher,
	)

	seedRooms(svc, cfg.Rooms)
	seedUsers(svc, cfg.Users)
	runBookings(svc, cfg.Bookings)
	seedRooms(svc, cfg.RoomUpdates)

	printRooms(svc)
	printBookings(svc)
	printUsers(svc)
}

func setupLogger(cfg config.LoggerConfig) {
	if cfg.Format == "json" {
		logrus.SetFormatter(new(logrus.JSONFormatter))
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func seedRooms(svc *service.ReservationService, seeds []config.RoomSeed) {
	for _, seed := range seeds {
		roomType, err := model.ParseRoomType(seed.Type)
		if err != nil {
			logrus.WithField("room", seed.Number).Warnf("room skipped: %v", err)
			continue
		}
		created, err := svc.ConfigureRoom(seed.Number, roomType, seed.Price)
		if err != nil {
			logrus.WithField("room", seed.Number).Warnf("room rejected: %v", err)
			continue
		}
		if created {
			logrus.WithField("room", seed.Number).Info("room created")
		} else {
			logrus.WithField("room", seed.Number).Info("room updated")
		}
	}
}

func seedUsers(svc *service.ReservationService, seeds []config.UserSeed) {
	for _, seed := range seeds {
		created, err := svc.ConfigureUser(seed.ID, seed.Balance)
		if err != nil {
			logrus.WithField("user", seed.ID).Warnf("user rejected: %v", err)
			continue
		}
		if created {
			logrus.WithField("user", seed.ID).Info("user created")
		} else {
			logrus.WithField("user", seed.ID).Info("user updated")
		}
	}
}

func runBookings(svc *service.ReservationService, seeds []config.BookingSeed) {
	ctx := context.Background()
	for _, seed := range seeds {
		checkIn, err := time.Parse(model.DateLayout, seed.CheckIn)
		if err != nil {
			logrus.Warnf("booking skipped: bad check-in %q: %v", seed.CheckIn, err)
			continue
		}
		checkOut, err := time.Parse(model.DateLayout, seed.CheckOut)
		if err != nil {
			logrus.Warnf("booking skipped: bad check-out %q: %v", seed.CheckOut, err)
			continue
		}
		booking, err := svc.BookRoom(ctx, seed.UserID, seed.RoomNumber, checkIn, checkOut)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user": seed.UserID,
				"room": seed.RoomNumber,
			}).Warnf("booking failed: %v", err)
			continue
		}
		logrus.WithFields(logrus.Fields{
			"booking_id": booking.ID,
			"user":       booking.UserID,
			"room":       booking.RoomNumber,
			"check_in":   booking.CheckIn.Format(model.DateLayout),
			"check_out":  booking.CheckOut.Format(model.DateLayout),
			"nights":     booking.Nights,
			"total_cost": booking.TotalCost,
		}).Info("booking successful")
	}
}

func printRooms(svc *service.ReservationService) {
	for _, room := range svc.ListRooms() {
		logrus.WithFields(logrus.Fields{
			"number":          room.Number,
			"type":            room.Type,
			"price_per_night": room.PricePerNight,
		}).Info("room")
	}
}

func printBookings(svc *service.ReservationService) {
	for _, b := range svc.ListBookings() {
		logrus.WithFields(logrus.Fields{
			"booking_id":         b.ID,
			"user":               b.UserID,
			"room":               b.RoomNumber,
			"check_in":           b.CheckIn.Format(model.DateLayout),
			"check_out":          b.CheckOut.Format(model.DateLayout),
			"nights":             b.Nights,
			"total_cost":         b.TotalCost,
			"room_type":          b.RoomType,
			"room_price":         b.RoomPrice,
			"user_balance_after": b.UserBalanceAfter,
		}).Info("booking")
	}
}

func printUsers(svc *service.ReservationService) {
	for _, user := range svc.ListUsers() {
		logrus.WithFields(logrus.Fields{
			"id":      user.ID,
			"balance": user.Balance,
		}).Info("user")
	}
}
