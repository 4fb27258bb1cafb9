// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type likeView struct {
	Liked bool
	Count int
}

func TestEntityState_SpeculativeChangeIsVisibleImmediately(t *testing.T) {
	state := NewEntityState(likeView{Liked: false, Count: 3})

	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- state.Mutate(context.Background(),
			func(v likeView) likeView { return likeView{Liked: true, Count: v.Count + 1} },
			func(ctx context.Context) (likeView, error) {
				<-release
				return likeView{Liked: true, Count: 4}, nil
			})
	}()

	// the optimistic view must be readable before the server answers
	assert.Eventually(t, func() bool {
		v := state.View()
		return v.Liked && v.Count == 4
	}, time.Second, 10*time.Millisecond)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, likeView{Liked: true, Count: 4}, state.View())
}

func TestEntityState_SuccessAdoptsServerTruth(t *testing.T) {
	state := NewEntityState(likeView{Liked: false, Count: 3})

	// another session liked the tweet concurrently; the server's count wins
	err := state.Mutate(context.Background(),
		func(v likeView) likeView { return likeView{Liked: true, Count: v.Count + 1} },
		func(ctx context.Context) (likeView, error) {
			return likeView{Liked: true, Count: 9}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, likeView{Liked: true, Count: 9}, state.View())
}

func TestEntityState_FailureRestoresPreviousExactly(t *testing.T) {
	before := likeView{Liked: false, Count: 3}
	state := NewEntityState(before)

	err := state.Mutate(context.Background(),
		func(v likeView) likeView { return likeView{Liked: true, Count: v.Count + 1} },
		func(ctx context.Context) (likeView, error) {
			return likeView{}, errors.New("connection lost")
		})

	require.Error(t, err)
	assert.Equal(t, before, state.View())
}

func TestEntityState_SecondMutationWhileInFlightIsRejected(t *testing.T) {
	state := NewEntityState(likeView{Count: 3})

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- state.Mutate(context.Background(),
			func(v likeView) likeView { v.Liked = true; return v },
			func(ctx context.Context) (likeView, error) {
				close(started)
				<-release
				return likeView{Liked: true, Count: 4}, nil
			})
	}()

	<-started
	err := state.Mutate(context.Background(),
		func(v likeView) likeView { v.Liked = false; return v },
		func(ctx context.Context) (likeView, error) { return likeView{}, nil })
	assert.True(t, errors.Is(err, ErrMutationInFlight))

	close(release)
	require.NoError(t, <-done)
}

func TestEntityState_AdditiveMutationsAreNotGated(t *testing.T) {
	state := NewEntityState([]string{})

	release := make(chan struct{})
	started := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = state.MutateAdditive(context.Background(),
			func(v []string) []string { return append(v, "temp-a") },
			func(ctx context.Context) ([]string, error) {
				close(started)
				<-release
				return []string{"a"}, nil
			})
	}()

	<-started
	// a second additive mutation must not be rejected while the first waits
	err := state.MutateAdditive(context.Background(),
		func(v []string) []string { return append(v, "temp-b") },
		func(ctx context.Context) ([]string, error) {
			return []string{"a", "b"}, nil
		})
	require.NoError(t, err)

	close(release)
	wg.Wait()
}

func TestEntityState_FailedAdditiveKeepsOtherSpeculativeEntries(t *testing.T) {
	state := NewEntityState([]string{"a"})

	releaseFirst := make(chan struct{})
	firstStarted := make(chan struct{})
	firstDone := make(chan error, 1)

	go func() {
		firstDone <- state.MutateAdditive(context.Background(),
			func(v []string) []string { return append(v, "temp-a") },
			func(ctx context.Context) ([]string, error) {
				close(firstStarted)
				<-releaseFirst
				return []string{"a", "reply-a"}, nil
			})
	}()

	<-firstStarted
	// a second reply fails while the first is still awaiting the server;
	// its rejection must not erase the first speculative entry
	err := state.MutateAdditive(context.Background(),
		func(v []string) []string { return append(v, "temp-b") },
		func(ctx context.Context) ([]string, error) {
			return nil, errors.New("connection lost")
		})
	require.Error(t, err)
	assert.Equal(t, []string{"a", "temp-a"}, state.View(),
		"the surviving in-flight entry must still be rendered")

	close(releaseFirst)
	require.NoError(t, <-firstDone)
	assert.Equal(t, []string{"a", "reply-a"}, state.View())
}

func TestEntityState_CompletionRebasesPendingEntriesOnNewTruth(t *testing.T) {
	state := NewEntityState([]string{"a"})

	releaseFirst := make(chan struct{})
	firstStarted := make(chan struct{})
	firstDone := make(chan error, 1)

	go func() {
		firstDone <- state.MutateAdditive(context.Background(),
			func(v []string) []string { return append(v, "temp-a") },
			func(ctx context.Context) ([]string, error) {
				close(firstStarted)
				<-releaseFirst
				return []string{"a", "b", "reply-a"}, nil
			})
	}()

	<-firstStarted
	// a second reply confirms first; the pending first entry must be
	// replayed on top of the confirmed truth, not dropped
	err := state.MutateAdditive(context.Background(),
		func(v []string) []string { return append(v, "temp-b") },
		func(ctx context.Context) ([]string, error) {
			return []string{"a", "b"}, nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "temp-a"}, state.View())

	close(releaseFirst)
	require.NoError(t, <-firstDone)
	assert.Equal(t, []string{"a", "b", "reply-a"}, state.View())
}

func TestEntityState_StaleCompletionDoesNotTouchReloadedEntity(t *testing.T) {
	state := NewEntityState(likeView{Liked: false, Count: 3})

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- state.Mutate(context.Background(),
			func(v likeView) likeView { return likeView{Liked: true, Count: v.Count + 1} },
			func(ctx context.Context) (likeView, error) {
				close(started)
				<-release
				return likeView{Liked: true, Count: 4}, nil
			})
	}()

	<-started
	// a refresh lands while the mutation is awaiting the server
	fresh := likeView{Liked: true, Count: 20}
	state.Reset(fresh)

	close(release)
	err := <-done
	assert.True(t, errors.Is(err, errStaleCompletion))
	assert.Equal(t, fresh, state.View(), "stale completion must not overwrite the re-loaded state")
}

func TestEntityState_ResetClearsInFlightGate(t *testing.T) {
	state := NewEntityState(likeView{})

	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- state.Mutate(context.Background(),
			func(v likeView) likeView { v.Liked = true; return v },
			func(ctx context.Context) (likeView, error) {
				close(started)
				<-release
				return likeView{}, nil
			})
	}()

	<-started
	state.Reset(likeView{Count: 5})

	// the reload invalidated the old mutation, so a new one may start
	err := state.Mutate(context.Background(),
		func(v likeView) likeView { v.Liked = true; return v },
		func(ctx context.Context) (likeView, error) {
			return likeView{Liked: true, Count: 6}, nil
		})
	require.NoError(t, err)

	close(release)
	<-done
	assert.Equal(t, likeView{Liked: true, Count: 6}, state.View())
}
