// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the messages the storage server writes into HTTP
// error responses.
//
// Keeping them in one place gives every handler and middleware the same
// wording, and keeps internal error chains out of response bodies.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a login, password or file name
	// fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a protected handler finds no
	// authenticated user in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgFileNotFound is returned when the requested file does not exist in
	// the user's folder.
	MsgFileNotFound = "file not found"

	// MsgFileTooLarge is returned when an upload exceeds the size limit.
	MsgFileTooLarge = "file too large"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
