// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-clip-keeper/models"
)

// Field name constants used to scope validation.
const (
	// FieldLogin targets models.User.Login.
	FieldLogin = "login"

	// FieldPassword targets models.User.Password.
	FieldPassword = "password"

	// FieldFileName targets a remote file name passed as a string.
	FieldFileName = "file_name"
)

const (
	minPasswordLength = 6
	maxLoginLength    = 128
	maxFileNameLength = 255
)

// fileNamePattern accepts the names the client produces: ".clipboard",
// ".clipboardCache" and "<uuid>.dat".
var fileNamePattern = regexp.MustCompile(`^\.?[A-Za-z0-9][A-Za-z0-9._-]*$`)

type requestValidator struct{}

// NewRequestValidator returns the Validator used by the remote storage
// server for account payloads (models.User) and remote file names (string).
func NewRequestValidator() Validator {
	return &requestValidator{}
}

// Validate implements Validator. With no fields, every rule applicable to
// the value's type is enforced.
func (v *requestValidator) Validate(_ context.Context, value any, fields ...string) error {
	switch val := value.(type) {
	case models.User:
		return v.validateUser(val, fields...)
	case *models.User:
		if val == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(*val, fields...)
	case string:
		for _, f := range fields {
			if f != FieldFileName {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		return ValidateFileName(val)
	default:
		return ErrUnsupportedType
	}
}

func (v *requestValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			login := strings.TrimSpace(user.Login)
			if login == "" || len(login) > maxLoginLength || login != user.Login {
				return ErrInvalidLogin
			}
		case FieldPassword:
			if len(user.Password) < minPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// ValidateFileName rejects names that are empty, too long, contain path
// separators or traversal sequences.
func ValidateFileName(name string) error {
	if name == "" || len(name) > maxFileNameLength {
		return ErrInvalidFileName
	}
	if strings.Contains(name, "..") || !fileNamePattern.MatchString(name) {
		return ErrInvalidFileName
	}
	return nil
}
