// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	assert.NotEqual(t, uuid.Nil, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, uuid.Version(7), a.Version())
}

func TestUUIDGenerator_GenerateUnique(t *testing.T) {
	g := NewUUIDGenerator()

	calls := 0
	id, ok := g.GenerateUnique(func(uuid.UUID) bool {
		calls++
		return calls < 3
	})
	assert.True(t, ok)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, 3, calls)

	id, ok = g.GenerateUnique(func(uuid.UUID) bool { return true })
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
}
