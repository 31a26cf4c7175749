// Package repository holds the in-memory stores for rooms, users and
// bookings together with the sentinel errors they return. The sentinels
// let higher layers such as the reservation service distinguish failure
// scenarios with errors.Is instead of inspecting messages.
package repository

import "errors"

// ErrRoomNotFound indicates that no room with the requested room number
// has been configured.
var ErrRoomNotFound = errors.New("room not found")

// ErrUserNotFound indicates that no user with the requested ID has been
// configured.
var ErrUserNotFound = errors.New("user not found")
