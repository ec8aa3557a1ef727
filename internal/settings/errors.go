// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "errors"

var (
	// ErrUnknownKey is returned by Set for a key that has no default value.
	ErrUnknownKey = errors.New("unknown setting key")

	// ErrTypeMismatch is returned by Set when the value type differs from
	// the type of the key's default.
	ErrTypeMismatch = errors.New("setting value type mismatch")
)
