// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

// Key names a single setting.
type Key string

const (
	// MaxDataToKeep is the maximum number of non-favorite entries kept.
	MaxDataToKeep Key = "MaxDataToKeep"

	// DateExpireLimit is the age, in days, after which a non-favorite entry
	// is purged.
	DateExpireLimit Key = "DateExpireLimit"

	// KeepDataAfterReboot keeps non-favorite entries across restarts.
	KeepDataAfterReboot Key = "KeepDataAfterReboot"

	// SynchronizationInterval is the period, in minutes, between two
	// automatic synchronization passes.
	SynchronizationInterval Key = "SynchronizationInterval"

	AvoidMeteredConnection           Key = "AvoidMeteredConnection"
	DisablePasswordAndCreditCardSync Key = "DisablePasswordAndCreditCardSync"
	AvoidCreditCard                  Key = "AvoidCreditCard"
	AvoidPasswords                   Key = "AvoidPasswords"

	// IgnoredApplications lists executable names whose captures are dropped.
	IgnoredApplications Key = "IgnoredApplications"

	// RemoteProvider is the name of the linked remote storage provider.
	// Empty means no provider is linked.
	RemoteProvider Key = "RemoteProvider"

	// RemoteToken is the last access token issued by the remote provider.
	RemoteToken Key = "RemoteToken"

	// LastRunVersion is the application version that last wrote the store.
	LastRunVersion Key = "LastRunVersion"

	// ClipboardPollInterval is the clipboard polling period in milliseconds.
	ClipboardPollInterval Key = "ClipboardPollInterval"
)

func defaultValues() map[Key]any {
	return map[Key]any{
		MaxDataToKeep:                    25,
		DateExpireLimit:                  30,
		KeepDataAfterReboot:              true,
		SynchronizationInterval:          10,
		AvoidMeteredConnection:           true,
		DisablePasswordAndCreditCardSync: true,
		AvoidCreditCard:                  true,
		AvoidPasswords:                   true,
		IgnoredApplications:              []string{},
		RemoteProvider:                   "",
		RemoteToken:                      "",
		LastRunVersion:                   "",
		ClipboardPollInterval:            500,
	}
}
