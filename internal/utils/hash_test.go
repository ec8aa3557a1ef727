// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceHMAC(key, data string) string {
	m := hmac.New(sha256.New, []byte(key))
	m.Write([]byte(data))
	return hex.EncodeToString(m.Sum(nil))
}

func TestHasher_MatchesReference(t *testing.T) {
	h := NewHasher("key")

	assert.Equal(t, referenceHMAC("key", "payload"), h.HashString("payload"))
	assert.Len(t, h.Hash([]byte("payload")), sha256.Size)
}

func TestHasher_Deterministic(t *testing.T) {
	h := NewHasher("key")

	assert.Equal(t, h.HashString("a"), h.HashString("a"))
	assert.NotEqual(t, h.HashString("a"), h.HashString("b"))
}

func TestHasher_DifferentKeys(t *testing.T) {
	assert.NotEqual(t, NewHasher("k1").HashString("data"), NewHasher("k2").HashString("data"))
}

func TestHasher_Equal(t *testing.T) {
	h := NewHasher("key")
	digest := h.HashString("secret")

	assert.True(t, h.Equal("secret", digest))
	assert.False(t, h.Equal("other", digest))
	assert.False(t, h.Equal("secret", "not-hex"))
	assert.False(t, NewHasher("key2").Equal("secret", digest))
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher("key")
	want := referenceHMAC("key", "payload")

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = h.HashString("payload")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
