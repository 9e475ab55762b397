// File: models/account.go
package models

import "time"

// Account represents an authenticated identity with a single role claim.
type Account struct {
	ID            string    `bson:"id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	DisplayName   string    `bson:"displayName" json:"displayName"`
	Role          string    `bson:"role" json:"role"` // Free-text claim set at registration; immutable
	PasswordHash  string    `bson:"passwordHash" json:"-"`
	EmailVerified bool      `bson:"emailVerified" json:"emailVerified"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
