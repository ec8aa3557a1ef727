// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account of the self-hosted remote storage server.
type User struct {
	// UserID is the server-assigned identifier.
	UserID int64 `json:"user_id"`

	// Login is the unique user login.
	Login string `json:"login"`

	// Password carries the plain password on register/login requests and
	// its HMAC hash at the persistence layer. Never returned to clients.
	Password string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}

// UserInfo is the public profile returned by /api/user/me.
type UserInfo struct {
	UserID int64  `json:"user_id"`
	Login  string `json:"login"`
}
