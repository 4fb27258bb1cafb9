// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators normalizes and checks raw form input before it reaches
// the service layer.
//
// Core concepts:
//   - Validators are pure functions over input strings: no store access, no
//     side effects. Uniqueness checks, which require the store, belong to
//     the service layer.
//   - Each field reports the FIRST violated rule only, in a fixed order:
//     presence → format → semantic refinement. The result is a
//     field-name → message map that plugs directly into
//     [models.FormState.Errors].
//
// An empty map result means the input passed every rule.
package validators

// FieldErrors maps a form field name to the message of the first rule the
// field violated. A nil or empty map means validation passed.
type FieldErrors map[string]string

// Ok reports whether no field violated any rule.
func (f FieldErrors) Ok() bool {
	return len(f) == 0
}
