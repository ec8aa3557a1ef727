// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors of the entry store. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrNilEntry is returned when a required entry argument is nil.
	ErrNilEntry = errors.New("entry is nil")

	// ErrDuplicateIdentifier is returned when an entry or one of its data
	// identifiers reuses an identifier already known to the store.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")

	// ErrEntryNotFound is returned when an operation targets an identifier
	// with no entry in the store.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrStaleData is returned by Load when the entry or cache file cannot be
	// decrypted or decoded, typically after an application upgrade.
	ErrStaleData = errors.New("stored data is unreadable")

	// ErrIdentifierExhausted is returned when no free identifier could be
	// generated.
	ErrIdentifierExhausted = errors.New("could not generate a unique identifier")
)

// Sentinel errors returned by the server repositories and file storage.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrFileNotFound is returned when a user file does not exist.
	ErrFileNotFound = errors.New("file was not found")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither pgx nor sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
