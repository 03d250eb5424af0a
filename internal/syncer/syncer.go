package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/service"
)

// Syncer owns the real-time shift subscription: acquired on start,
// guaranteed released on stop on every exit path. Incoming remote pushes
// are handed to the onShift callback immediately, with no queuing or
// debounce.
type Syncer struct {
	remote   service.RemoteStore
	identity service.Identity
	onShift  func(*model.Shift)
	sub      service.Subscription
	mu       sync.Mutex
}

// New creates a syncer. onShift receives each pushed remote shift; the
// callback is responsible for applying the merge policy.
func New(remote service.RemoteStore, identity service.Identity, onShift func(*model.Shift)) *Syncer {
	return &Syncer{
		remote:   remote,
		identity: identity,
		onShift:  onShift,
	}
}

// Start acquires the remote watch for the signed-in user. Without an
// identity it does nothing; local-only operation needs no subscription.
func (s *Syncer) Start(ctx context.Context) error {
	userID, ok := s.identity.CurrentUser()
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub != nil {
		return nil
	}

	sub, err := s.remote.WatchShift(ctx, userID, s.onShift)
	if err != nil {
		return fmt.Errorf("failed to watch remote shift: %w", err)
	}
	s.sub = sub

	slog.Info("remote shift subscription started", "user", userID)
	return nil
}

// Stop cancels the subscription. Safe to call repeatedly, and required
// before sign-out so a dangling callback cannot touch stale state.
func (s *Syncer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub != nil {
		s.sub.Cancel()
		s.sub = nil
		slog.Info("remote shift subscription stopped")
	}
}

// Active reports whether a subscription is currently held.
func (s *Syncer) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sub != nil
}
