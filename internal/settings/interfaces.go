// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

// Provider is the typed read/write view of the user settings consumed by
// the entry store, the capture pipeline and the synchronization service.
type Provider interface {
	Int(key Key) int
	Bool(key Key) bool
	String(key Key) string
	Strings(key Key) []string
	Set(key Key, value any) error
}
