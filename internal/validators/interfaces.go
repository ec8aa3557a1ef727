// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation and content classification.
//
// Two kinds of checks live here:
//   - Validator: rule enforcement on request payloads of the remote storage
//     server (accounts, remote file names), with optional field scoping.
//   - Detectors: pure classifiers run on every clipboard capture
//     (IsCreditCard, IsPassword) deciding whether a capture is sensitive.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
