package syncer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/service"
)

type watchRemote struct {
	onChange func(*model.Shift)
	watches  int
	cancels  int
}

func (w *watchRemote) SaveShift(context.Context, string, *model.Shift) error { return nil }
func (w *watchRemote) ClearShift(context.Context, string) error              { return nil }
func (w *watchRemote) SaveSettings(context.Context, string, *model.Settings) error {
	return nil
}
func (w *watchRemote) LoadSettings(context.Context, string) (*service.RemoteSettings, error) {
	return nil, nil
}
func (w *watchRemote) AppendHistory(context.Context, string, *model.HistoryEntry) error {
	return nil
}
func (w *watchRemote) LoadHistory(context.Context, string, int) ([]model.HistoryEntry, error) {
	return nil, nil
}

func (w *watchRemote) WatchShift(_ context.Context, _ string, onChange func(*model.Shift)) (service.Subscription, error) {
	w.watches++
	w.onChange = onChange
	return subFunc(func() { w.cancels++ }), nil
}

type subFunc func()

func (f subFunc) Cancel() { f() }

type fixedUser string

func (u fixedUser) CurrentUser() (string, bool) { return string(u), u != "" }

func TestSyncerLifecycle(t *testing.T) {
	ctx := context.Background()
	remote := &watchRemote{}

	var received []*model.Shift
	s := New(remote, fixedUser("driver-1"), func(shift *model.Shift) {
		received = append(received, shift)
	})

	assert.False(t, s.Active())
	require.NoError(t, s.Start(ctx))
	assert.True(t, s.Active())
	assert.Equal(t, 1, remote.watches)

	// Starting again does not stack subscriptions.
	require.NoError(t, s.Start(ctx))
	assert.Equal(t, 1, remote.watches)

	// Pushes reach the callback.
	remote.onChange(shiftWith(2, 0))
	require.Len(t, received, 1)
	assert.Len(t, received[0].Trips, 2)

	s.Stop()
	assert.False(t, s.Active())
	assert.Equal(t, 1, remote.cancels)

	// Stop is safe to repeat.
	s.Stop()
	assert.Equal(t, 1, remote.cancels)
}

func TestSyncerWithoutIdentity(t *testing.T) {
	remote := &watchRemote{}
	s := New(remote, fixedUser(""), func(*model.Shift) {})

	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.Active())
	assert.Zero(t, remote.watches)
}
