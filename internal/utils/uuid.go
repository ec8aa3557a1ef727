// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// maxUUIDAttempts bounds the regeneration loop of GenerateUnique.
const maxUUIDAttempts = 16

// UUIDGenerator issues entry and payload identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4
// when the clock source fails.
func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}

// GenerateUnique regenerates until taken reports the identifier as free.
// It returns false when no free identifier was found within a bounded
// number of attempts.
func (g *UUIDGenerator) GenerateUnique(taken func(uuid.UUID) bool) (uuid.UUID, bool) {
	for range maxUUIDAttempts {
		id := g.Generate()
		if !taken(id) {
			return id, true
		}
	}

	return uuid.Nil, false
}
