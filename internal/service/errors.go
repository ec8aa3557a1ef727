// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrNotAuthenticated     = errors.New("remote storage rejected the credentials")
	ErrRemoteListUnreadable = errors.New("remote entry list is unreadable")
	ErrEmptyCapture         = errors.New("capture has no retained format")
	ErrIgnoredApplication   = errors.New("capture from an ignored application")
	ErrSensitiveCapture     = errors.New("sensitive capture was not kept")
	ErrMigrationFailed      = errors.New("data migration failed")
)
