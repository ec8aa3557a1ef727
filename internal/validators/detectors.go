// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-clip-keeper/models"
)

// creditCardPattern matches the digit string of the major issuers:
// Visa, MasterCard, American Express, Diners Club, Discover and JCB.
var creditCardPattern = regexp.MustCompile(`^(?:` +
	`4[0-9]{12}(?:[0-9]{3})?` +
	`|(?:5[1-5][0-9]{2}|222[1-9]|22[3-9][0-9]|2[3-6][0-9]{2}|27[01][0-9]|2720)[0-9]{12}` +
	`|3[47][0-9]{13}` +
	`|3(?:0[0-5]|[68][0-9])[0-9]{11}` +
	`|6(?:011|5[0-9]{2})[0-9]{12}` +
	`|(?:2131|1800|35[0-9]{3})[0-9]{11}` +
	`)$`)

// browsers lists executable names (lower case, without extension) of the
// applications whose captures can be passwords.
var browsers = map[string]struct{}{
	"chrome":   {},
	"chromium": {},
	"firefox":  {},
	"msedge":   {},
	"iexplore": {},
	"opera":    {},
	"brave":    {},
	"vivaldi":  {},
	"safari":   {},
}

const (
	passwordMinLength     = 8
	passwordMaxLength     = 32
	passwordMaxWhitespace = 2
)

// IsCreditCard reports whether text is a card number of a known issuer,
// written with any non-letter separators ("4974-0411-3456-7895",
// "4974 0411 3456 7895"). Text containing letters is never a card number.
func IsCreditCard(text string) bool {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(text) {
		switch {
		case unicode.IsDigit(r):
			digits.WriteRune(r)
		case unicode.IsLetter(r):
			return false
		}
	}

	return creditCardPattern.MatchString(digits.String())
}

// IsBrowser reports whether app is one of the recognized web browsers.
func IsBrowser(app models.AppIdentity) bool {
	exe := strings.ToLower(filepath.Base(strings.ReplaceAll(app.Executable, `\`, "/")))
	exe = strings.TrimSuffix(exe, ".exe")
	_, ok := browsers[exe]
	return ok
}

// IsPassword reports whether text copied from app looks like a password:
// the source must be a browser and the text must hold a digit, an upper
// case letter and a symbol, be 8 to 32 characters long and contain at most
// two whitespace characters.
func IsPassword(text string, app models.AppIdentity) bool {
	if !IsBrowser(app) {
		return false
	}

	runes := []rune(text)
	if len(runes) < passwordMinLength || len(runes) > passwordMaxLength {
		return false
	}

	var hasDigit, hasUpper, hasSymbol bool
	whitespace := 0
	for _, r := range runes {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsSpace(r):
			whitespace++
		case !unicode.IsLetter(r):
			hasSymbol = true
		}
	}

	return hasDigit && hasUpper && hasSymbol && whitespace <= passwordMaxWhitespace
}
