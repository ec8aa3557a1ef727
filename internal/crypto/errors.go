// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEmptyPassword is returned when a codec call receives no password.
	ErrEmptyPassword = errors.New("empty password")

	// ErrInvalidCiphertext is returned when the input is empty or not a
	// whole number of cipher blocks.
	ErrInvalidCiphertext = errors.New("invalid ciphertext length")

	// ErrInvalidPadding is returned when the decrypted tail is not valid
	// PKCS#7 padding, which almost always means a wrong password.
	ErrInvalidPadding = errors.New("invalid padding")
)
