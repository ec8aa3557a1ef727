// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the encrypted stream codec every persisted file
// and every network payload passes through, together with the deterministic
// password derivations used for each kind of file.
//
// The codec is AES-128 in CBC mode with PKCS#7 padding. Key and IV are the
// same 16 bytes, derived from the password with PBKDF2-HMAC-SHA1 over a
// fixed, non-secret salt. The derived passwords are built from values that
// are not secret (an identifier, the application version, the remote user
// identity): the scheme obfuscates data at rest, it does not protect it
// from someone who knows the derivation.
package crypto
