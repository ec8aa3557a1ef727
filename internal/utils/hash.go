// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests. Hash instances are pooled so
// concurrent request handlers do not allocate a new HMAC per call.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher whose digests are keyed with hashKey.
//
// Example usage:
//
//	h := utils.NewHasher("my-secret-key")
//	digest := h.HashString("some data")
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Hash returns the raw HMAC-SHA256 digest of data.
func (h *Hasher) Hash(data []byte) []byte {
	hs := h.pool.Get().(hash.Hash)
	hs.Reset()

	hs.Write(data)
	sum := hs.Sum(nil)

	hs.Reset()
	h.pool.Put(hs)

	return sum
}

// HashString returns the hex-encoded HMAC-SHA256 digest of data.
func (h *Hasher) HashString(data string) string {
	return hex.EncodeToString(h.Hash([]byte(data)))
}

// Equal reports whether hexDigest is the digest of data. The comparison is
// constant-time.
func (h *Hasher) Equal(data, hexDigest string) bool {
	want, err := hex.DecodeString(hexDigest)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Hash([]byte(data)), want)
}
