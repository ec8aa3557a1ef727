// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkMonitor_IsAvailable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	m := NewNetworkMonitor(config.Network{ProbeAddress: ln.Addr().String(), ProbeTimeout: time.Second})
	assert.True(t, m.IsAvailable(context.Background()))
	assert.False(t, m.IsMetered(context.Background()))

	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	closed := NewNetworkMonitor(config.Network{ProbeAddress: addr, ProbeTimeout: time.Second})
	assert.False(t, closed.IsAvailable(context.Background()))
}

func TestNetworkMonitor_EmptyAddress(t *testing.T) {
	m := NewNetworkMonitor(config.Network{})
	assert.Equal(t, defaultProbeTimeout, m.timeout)
	assert.True(t, m.IsAvailable(context.Background()))
}
