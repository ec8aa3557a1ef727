// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrRemoteFileNotFound = errors.New("remote file not found")
	ErrUnauthorized       = errors.New("remote storage unauthorized")
	ErrRemoteUnavailable  = errors.New("remote storage unavailable")
	ErrRemoteRejected     = errors.New("remote storage rejected the request")
	ErrLoginTaken         = errors.New("login is already taken")
	ErrInvalidPath        = errors.New("invalid remote path")
	ErrUnknownProvider    = errors.New("unknown remote provider")
)
