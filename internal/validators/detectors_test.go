// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-clip-keeper/models"
)

func TestIsCreditCard(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"visa with dashes", "4974-0411-3456-7895", true},
		{"visa with spaces", "4974 0411 3456 7895", true},
		{"visa plain", "4974041134567895", true},
		{"mastercard", "5500 0000 0000 0004", true},
		{"amex", "3782 822463 10005", true},
		{"discover", "6011 1111 1111 1117", true},
		{"jcb", "3530 1113 3330 0000", true},
		{"unknown issuer", "1234-0411-3456-7895", false},
		{"too short", "4974 0411", false},
		{"contains letters", "card 4974-0411-3456-7895", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCreditCard(tt.text))
		})
	}
}

func TestIsPassword(t *testing.T) {
	chrome := models.AppIdentity{Name: "Google Chrome", Executable: `C:\Program Files\Google\Chrome\chrome.exe`}
	firefox := models.AppIdentity{Name: "Firefox", Executable: "/usr/lib/firefox/firefox"}
	editor := models.AppIdentity{Name: "Notepad", Executable: "notepad.exe"}

	tests := []struct {
		name string
		text string
		app  models.AppIdentity
		want bool
	}{
		{"strong password in chrome", "Passw0rd!", chrome, true},
		{"strong password in firefox", "S3cure#Key", firefox, true},
		{"not a browser", "Passw0rd!", editor, false},
		{"no digit", "Password!", chrome, false},
		{"no upper case", "passw0rd!", chrome, false},
		{"no symbol", "Passw0rd", chrome, false},
		{"too short", "Pa0!", chrome, false},
		{"too long", "Passw0rd!Passw0rd!Passw0rd!Passw0rd!", chrome, false},
		{"two spaces allowed", "Pa ss w0rd!", chrome, true},
		{"too many spaces", "P a s s w0rd!", chrome, false},
		{"sentence", "Hello, World 2026 is here", chrome, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPassword(tt.text, tt.app))
		})
	}
}

func TestIsBrowser(t *testing.T) {
	assert.True(t, IsBrowser(models.AppIdentity{Executable: "MSEDGE.EXE"}))
	assert.True(t, IsBrowser(models.AppIdentity{Executable: "/Applications/Safari.app/Contents/MacOS/safari"}))
	assert.False(t, IsBrowser(models.AppIdentity{}))
	assert.False(t, IsBrowser(models.AppIdentity{Executable: "code"}))
}
