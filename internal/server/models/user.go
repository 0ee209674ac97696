// Package models defines the persisted record shapes shared by repositories
// and services.
package models

import "time"

// User is a registered principal. PasswordDigest embeds its own salt and is
// never serialized to clients.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	PasswordDigest string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}
