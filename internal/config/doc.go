// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the clipboard keeper client and its storage server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. JSON config file
//  2. Environment variables (a ".env" file in the working directory is
//     loaded into the environment first)
//  3. Command-line flags
//
// The main entry points are [GetClientConfig] for the clipboard daemon and
// [GetServerConfig] for the remote storage server.
package config
