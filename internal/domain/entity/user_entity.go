package entity

import (
	"time"
)

// User is the identity record for the auth core. Email is the natural key;
// Password holds a bcrypt hash, never plaintext. Role is immutable after
// registration and users are never mutated or deleted by this core.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
