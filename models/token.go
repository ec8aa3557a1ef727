// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set issued by the remote storage server: the
// standard registered claims plus the account login, which the client needs
// to derive the remote file password.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Login is the account login the token was issued for.
	Login string `json:"login"`
}

// Token wraps a signed JWT together with the identity it carries.
type Token struct {
	// Token is the underlying JWT. Only the server process needs it.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`

	// Login is the parsed "login" claim.
	Login string `json:"-"`
}

// UserIDFromClaims parses the subject claim of c as an int64 user id.
func UserIDFromClaims(c jwt.Claims) (int64, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
