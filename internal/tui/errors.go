// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-feed-board/models"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "no network or the server is unavailable"
	}

	return err.Error()
}

// firstFormError flattens a rejected form state into one line for the
// status bar.
func firstFormError(state models.FormState) string {
	if state.Message != "" {
		return state.Message
	}
	for _, msg := range state.Errors {
		return msg
	}
	return "submission failed"
}
