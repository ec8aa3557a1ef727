// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the clipboard daemon runtime.
//
// It wires the entry store, the remote provider, the capture pipeline and
// background synchronization into a single process lifecycle: version
// migration, store load, clipboard watching, periodic and folder-triggered
// sync passes, and a final save on exit.
package client
