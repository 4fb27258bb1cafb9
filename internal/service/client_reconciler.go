// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrMutationInFlight is returned when a gated mutation is requested
	// while a previous one on the same entity has not completed yet.
	ErrMutationInFlight = errors.New("a mutation is already in flight for this entity")

	// errStaleCompletion signals that an entity was re-loaded while a
	// mutation was awaiting its server call; the completion must not touch
	// the fresh state.
	errStaleCompletion = errors.New("stale mutation completion")
)

// EntityState tracks one entity through speculative mutations. It holds two
// copies of the entity: confirmed is the last server truth, current is what
// the UI renders and may run ahead of confirmed while a mutation is awaiting
// the server.
//
// The lifecycle of a mutation:
//  1. register the speculative change as a pending overlay;
//  2. apply it to current immediately;
//  3. issue the server call;
//  4. on success adopt the server's result as confirmed;
//  5. on failure keep confirmed untouched;
//  6. either way, rebuild current by replaying the remaining pending
//     overlays on top of confirmed, so one mutation's outcome never erases
//     another still-in-flight speculative entry.
//
// A generation counter guards every post-await write: Reset bumps it, so a
// completion that raced with a re-load finds the generation changed and
// leaves the fresh state alone.
type EntityState[T any] struct {
	mu         sync.Mutex
	current    T
	confirmed  T
	inFlight   bool
	generation uint64
	nextOpID   uint64
	pending    []pendingOp[T]
}

// pendingOp is one speculative change awaiting its server call.
type pendingOp[T any] struct {
	id        uint64
	speculate func(T) T
}

// NewEntityState returns an EntityState whose confirmed and current views
// both hold v.
func NewEntityState[T any](v T) *EntityState[T] {
	return &EntityState[T]{current: v, confirmed: v}
}

// View returns the state the UI should render right now, speculative changes
// included.
func (s *EntityState[T]) View() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Confirmed returns the last server-acknowledged state without any
// speculative overlay. Commit callbacks graft server results onto this, not
// onto View, so another mutation's speculative entry can never be promoted
// to confirmed truth.
func (s *EntityState[T]) Confirmed() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmed
}

// Reset adopts v as the new server truth, discards any speculative overlay
// and invalidates in-flight completions.
func (s *EntityState[T]) Reset(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = v
	s.confirmed = v
	s.inFlight = false
	s.pending = nil
	s.generation++
}

// Mutate runs one gated speculative mutation: at most one may be in flight
// per entity, a second request is rejected with ErrMutationInFlight before
// any state changes. Use it for toggles, where a second flip while the first
// is unconfirmed would race the server.
//
// speculate maps the current view to its optimistic successor and must be
// pure. commit performs the server call and returns the resulting truth.
func (s *EntityState[T]) Mutate(ctx context.Context, speculate func(T) T, commit func(context.Context) (T, error)) error {
	return s.mutate(ctx, true, speculate, commit)
}

// MutateAdditive is Mutate without the in-flight gate. Use it for additive
// changes (appending a reply) that cannot conflict with each other as long
// as each speculative entry carries a unique temporary ID.
func (s *EntityState[T]) MutateAdditive(ctx context.Context, speculate func(T) T, commit func(context.Context) (T, error)) error {
	return s.mutate(ctx, false, speculate, commit)
}

func (s *EntityState[T]) mutate(ctx context.Context, gated bool, speculate func(T) T, commit func(context.Context) (T, error)) error {
	s.mu.Lock()
	if gated {
		if s.inFlight {
			s.mu.Unlock()
			return ErrMutationInFlight
		}
		s.inFlight = true
	}
	s.nextOpID++
	op := pendingOp[T]{id: s.nextOpID, speculate: speculate}
	s.pending = append(s.pending, op)
	generation := s.generation
	s.current = speculate(s.current)
	s.mu.Unlock()

	truth, err := commit(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		// the entity was re-loaded while we were waiting; the fresh state
		// already supersedes anything this completion could write
		return errStaleCompletion
	}

	if gated {
		s.inFlight = false
	}

	s.removePending(op.id)

	if err != nil {
		// confirmed stays as the server last acknowledged it; replaying the
		// surviving overlays keeps other in-flight speculative entries visible
		s.current = s.replayPending(s.confirmed)
		return err
	}

	s.confirmed = truth
	s.current = s.replayPending(truth)
	return nil
}

func (s *EntityState[T]) removePending(id uint64) {
	for i, op := range s.pending {
		if op.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// replayPending applies the still-pending speculative changes, in submission
// order, on top of base. Callers must hold s.mu.
func (s *EntityState[T]) replayPending(base T) T {
	for _, op := range s.pending {
		base = op.speculate(base)
	}
	return base
}
