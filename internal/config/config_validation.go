// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Signing and hashing keys are deliberately not required here: tests and the
// client runtime load the same structured config without server secrets.
// The server main calls [StructuredConfig.ValidateServerSecrets] instead.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AllowedEmailDomain != "" && !strings.HasPrefix(cfg.App.AllowedEmailDomain, "@") {
		return ErrInvalidAppConfigs
	}

	if cfg.App.SessionDuration < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

// ValidateServerSecrets checks the secrets only the server process needs.
// A session cookie signed with an empty key is forgeable, so an empty
// SessionSignKey or PasswordHashKey aborts server startup.
func (cfg *StructuredConfig) ValidateServerSecrets() error {
	if cfg.App.SessionSignKey == "" || cfg.App.PasswordHashKey == "" {
		return ErrMissingServerSecrets
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
