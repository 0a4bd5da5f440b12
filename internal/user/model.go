package user

import "time"

// User is keyed by the Telegram user ID. Records are created on first
// contact and updated on every interaction; they are never deleted.
type User struct {
	ID         int64     `bson:"_id"`
	Username   string    `bson:"username,omitempty"`
	FirstName  string    `bson:"firstName,omitempty"`
	LastName   string    `bson:"lastName,omitempty"`
	CreatedAt  time.Time `bson:"createdAt"`
	LastActive time.Time `bson:"lastActive"`
	OrderCount int64     `bson:"orderCount"`
}

// Profile carries the mutable identity fields taken from an inbound event.
type Profile struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}
