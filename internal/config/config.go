// Package config loads the harness configuration and the seed scenario
// from config/config.yml.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Config holds everything the demo harness needs: logger settings, the
// optional event queue and the seed scenario it replays against the
// reservation service.
type Config struct {
	Logger      LoggerConfig  `mapstructure:"logger"`
	Queue       QueueConfig   `mapstructure:"queue"`
	Rooms       []RoomSeed    `mapstructure:"rooms"`
	Users       []UserSeed    `mapstructure:"users"`
	Bookings    []BookingSeed `mapstructure:"bookings"`
	RoomUpdates []RoomSeed    `mapstructure:"room_updates"`
}

// LoggerConfig selects the logrus output format and verbosity.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// QueueConfig enables publishing of booking-confirmed events and names
// the broker to publish to. The AMQP_URL environment variable overrides
// the configured URL.
type QueueConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// RoomSeed describes one ConfigureRoom call.
type RoomSeed struct {
	Number int    `mapstructure:"number"`
	Type   string `mapstructure:"type"`
	Price  int64  `mapstructure:"price"`
}

// UserSeed describes one ConfigureUser call.
type UserSeed struct {
	ID      int   `mapstructure:"id"`
	Balance int64 `mapstructure:"balance"`
}

// BookingSeed describes one BookRoom attempt. Dates use the day/month/
// year layout.
type BookingSeed struct {
	UserID     int    `mapstructure:"user_id"`
	RoomNumber int    `mapstructure:"room_number"`
	CheckIn    string `mapstructure:"check_in"`
	CheckOut   string `mapstructure:"check_out"`
}

// LoadConfig reads config/config.yml into a viper instance.
func LoadConfig() (*viper.Viper, error) {
	v := viper.New()

	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v, nil
}

// ParseConfig decodes a loaded viper instance into a Config.
func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetEnv returns the value of the environment variable or the default
// when it is unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
