// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

func TestDiskFileStorage_Lifecycle(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	files, err := fs.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, files)

	n, err := fs.Save(ctx, 1, ".clipboard", strings.NewReader("entries"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	_, err = fs.Save(ctx, 1, "a.dat", strings.NewReader("abc"))
	require.NoError(t, err)

	files, err = fs.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, ".clipboard", files[0].Name)
	assert.Equal(t, int64(7), files[0].Size)
	assert.Equal(t, "a.dat", files[1].Name)

	rc, err := fs.Open(ctx, 1, ".clipboard")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "entries", string(body))

	// users are isolated
	_, err = fs.Open(ctx, 2, ".clipboard")
	assert.ErrorIs(t, err, ErrFileNotFound)

	require.NoError(t, fs.Delete(ctx, 1, "a.dat"))
	assert.ErrorIs(t, fs.Delete(ctx, 1, "a.dat"), ErrFileNotFound)
}

func TestDiskFileStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	_, err = fs.Save(ctx, 1, "../2/.clipboard", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = fs.Open(ctx, 1, "")
	assert.Error(t, err)
}
