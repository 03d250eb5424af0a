package engine

import (
	"context"

	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/service"
)

// NoopRemote is the default remote collaborator: every write succeeds
// without doing anything and every read comes back empty. Selected at
// startup when no identity is present.
type NoopRemote struct{}

// SaveShift does nothing.
func (NoopRemote) SaveShift(_ context.Context, _ string, _ *model.Shift) error { return nil }

// ClearShift does nothing.
func (NoopRemote) ClearShift(_ context.Context, _ string) error { return nil }

// WatchShift returns a subscription that never fires.
func (NoopRemote) WatchShift(_ context.Context, _ string, _ func(*model.Shift)) (service.Subscription, error) {
	return noopSubscription{}, nil
}

// LoadSettings reports no remote document.
func (NoopRemote) LoadSettings(_ context.Context, _ string) (*service.RemoteSettings, error) {
	return nil, nil
}

// SaveSettings does nothing.
func (NoopRemote) SaveSettings(_ context.Context, _ string, _ *model.Settings) error { return nil }

// AppendHistory does nothing.
func (NoopRemote) AppendHistory(_ context.Context, _ string, _ *model.HistoryEntry) error {
	return nil
}

// LoadHistory reports an empty archive.
func (NoopRemote) LoadHistory(_ context.Context, _ string, _ int) ([]model.HistoryEntry, error) {
	return nil, nil
}

type noopSubscription struct{}

func (noopSubscription) Cancel() {}

// Anonymous is the default identity collaborator: no user is present.
type Anonymous struct{}

// CurrentUser reports that nobody is signed in.
func (Anonymous) CurrentUser() (string, bool) { return "", false }

// UserIdentity is a fixed signed-in identity taken from configuration
// rather than an authentication flow. An empty ID counts as anonymous.
type UserIdentity struct {
	ID string
}

// CurrentUser reports the configured user when one is set.
func (u UserIdentity) CurrentUser() (string, bool) { return u.ID, u.ID != "" }
