// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements password digest derivation for the feed server.
//
// Two [Hasher] implementations are provided:
//   - [HMACHasher] — deterministic keyed HMAC-SHA256, compatible with
//     digests produced by earlier deployments;
//   - [BcryptHasher] — salted, cost-tunable bcrypt for new deployments.
package crypto

import (
	"crypto/hmac"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-feed-board/internal/utils"
)

// HMACHasher derives digests with HMAC-SHA256 keyed by a server-side secret.
// The scheme is deterministic: there is no per-user salt, so equal passwords
// produce equal digests. Verification compares digests in constant time.
type HMACHasher struct {
	hashKey string
}

// NewHMACHasher constructs an [HMACHasher] keyed with hashKey. The key must
// match the one used when the stored digests were created.
func NewHMACHasher(hashKey string) *HMACHasher {
	return &HMACHasher{hashKey: hashKey}
}

// Hash implements [Hasher]. It never fails; the error return exists only to
// satisfy the interface shared with salted schemes.
func (h *HMACHasher) Hash(password string) (string, error) {
	return utils.HashString(password, h.hashKey), nil
}

// Verify implements [Hasher] using a constant-time comparison.
func (h *HMACHasher) Verify(password, digest string) bool {
	computed := utils.HashString(password, h.hashKey)
	return hmac.Equal([]byte(computed), []byte(digest))
}

// BcryptHasher derives salted digests with bcrypt. Unlike [HMACHasher] the
// digest embeds its own salt, so two hashes of the same password differ.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [BcryptHasher]. A cost outside the valid
// bcrypt range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements [Hasher].
func (b *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify implements [Hasher]. bcrypt's comparison is constant time over the
// derived key.
func (b *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
