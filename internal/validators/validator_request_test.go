// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-clip-keeper/models"
)

func TestRequestValidator_User(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.User{Login: "alice", Password: "secret1"}))
	assert.NoError(t, v.Validate(ctx, &models.User{Login: "alice"}, FieldLogin))

	assert.ErrorIs(t, v.Validate(ctx, models.User{Login: "", Password: "secret1"}), ErrInvalidLogin)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Login: " alice", Password: "secret1"}), ErrInvalidLogin)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Login: "alice", Password: "123"}), ErrInvalidPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Login: "alice"}, "email"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, (*models.User)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestRequestValidator_FileName(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	valid := []string{".clipboard", ".clipboardCache", "0190a2c4-5b6e-7f00-8000-000000000001.dat"}
	for _, name := range valid {
		assert.NoError(t, v.Validate(ctx, name, FieldFileName), name)
	}

	invalid := []string{"", "..", "../secret", "a/b.dat", `a\b.dat`, "..clipboard", "-rf"}
	for _, name := range invalid {
		assert.ErrorIs(t, v.Validate(ctx, name), ErrInvalidFileName, name)
	}

	assert.ErrorIs(t, v.Validate(ctx, "x.dat", FieldLogin), ErrUnknownField)
}
