package model

import "time"

// User represents a guest with a prepaid balance. Users are identified
// by a caller-assigned numeric ID. The balance is reduced when a booking
// is recorded and may be reset in place by reconfiguration.
//
// Fields:
//  ID        – natural key of the user.
//  Balance   – current spendable balance; never negative.
//  CreatedAt – when the user was first configured. Updates do not touch
//              this value.
type User struct {
	ID        int
	Balance   int64
	CreatedAt time.Time
}
