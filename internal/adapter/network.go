// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
)

const defaultProbeTimeout = 3 * time.Second

// NetworkMonitor decides whether the network is usable by dialing a probe
// address over TCP.
type NetworkMonitor struct {
	address string
	timeout time.Duration
	dial    func(ctx context.Context, network, address string) (net.Conn, error)
}

// NewNetworkMonitor builds a monitor for cfg.ProbeAddress. An empty address
// makes the network always available.
func NewNetworkMonitor(cfg config.Network) *NetworkMonitor {
	timeout := cfg.ProbeTimeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	d := &net.Dialer{}
	return &NetworkMonitor{
		address: cfg.ProbeAddress,
		timeout: timeout,
		dial:    d.DialContext,
	}
}

// IsAvailable reports whether the probe address accepts a connection.
func (m *NetworkMonitor) IsAvailable(ctx context.Context) bool {
	if m.address == "" {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	conn, err := m.dial(ctx, "tcp", m.address)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// IsMetered reports whether the active connection is billed by volume. The
// information is not exposed portably, so connections are never metered.
func (m *NetworkMonitor) IsMetered(context.Context) bool {
	return false
}
