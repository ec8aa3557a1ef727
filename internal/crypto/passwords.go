// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

func digest(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// DataIdentifierPassword is the password of a local <identifier>.dat file.
// Anyone holding the identifier can derive it.
func DataIdentifierPassword(id uuid.UUID) string {
	return digest("data", id.String())
}

// ApplicationPassword is the password of the entry-list and cache files:
// the application secret salted with the running version, so files written
// by another version need an explicit migration.
func ApplicationPassword(secret, version string) string {
	return digest("app", secret, version)
}

// RemotePassword is the password of every file stored on a remote provider,
// derived from the authenticated user's identity.
func RemotePassword(userID, userName string) string {
	return digest("remote", userID, userName)
}
