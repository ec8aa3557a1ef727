// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings is the user settings provider of the clipboard keeper.
//
// Settings are stored in a bbolt database under the application data
// directory, one JSON-encoded value per key in a single bucket. Reading a
// key that was never written returns its default, so a fresh installation
// behaves exactly like one with every setting left untouched.
package settings
