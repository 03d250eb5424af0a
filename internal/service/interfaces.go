// Package service defines the interfaces for all application services and
// external collaborators.
package service

import (
	"context"
	"time"

	"github.com/rutaapp/rutaapp/internal/model"
)

// Storage defines the contract for the local persistence layer. It is the
// durable source of truth; the app must remain fully operable with nothing
// but this.
type Storage interface {
	// Active shift
	LoadShift(ctx context.Context) (*model.Shift, error)
	SaveShift(ctx context.Context, shift *model.Shift) error

	// Settings
	LoadSettings(ctx context.Context) (*model.Settings, error)
	SaveSettings(ctx context.Context, settings *model.Settings) error

	// Cash float carried alongside the shift state
	BaseCash(ctx context.Context) (float64, error)
	SetBaseCash(ctx context.Context, amount float64) error

	// History archive
	AppendHistory(ctx context.Context, entry *model.HistoryEntry) error
	GetHistory(ctx context.Context) ([]model.HistoryEntry, error)
	ReplaceHistory(ctx context.Context, entries []model.HistoryEntry) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Subscription is a cancellable handle to a remote real-time watch. The
// lifecycle owner must hold it and cancel it on teardown on every exit
// path; a dangling callback must never touch stale state.
type Subscription interface {
	Cancel()
}

// RemoteSettings is the remote settings document. Nil fields were absent
// in the document; the merge is field-wise, remote-wins-when-present.
type RemoteSettings struct {
	DailyGoal   *float64
	StorageMode *model.StorageMode
	Platforms   []model.Platform
}

// RemoteStore is the remote persistence collaborator (a document store
// with real-time change notification). Write failures are logged and
// dropped, never surfaced as blocking errors.
type RemoteStore interface {
	SaveShift(ctx context.Context, userID string, shift *model.Shift) error
	ClearShift(ctx context.Context, userID string) error
	WatchShift(ctx context.Context, userID string, onChange func(*model.Shift)) (Subscription, error)

	LoadSettings(ctx context.Context, userID string) (*RemoteSettings, error)
	SaveSettings(ctx context.Context, userID string, settings *model.Settings) error

	AppendHistory(ctx context.Context, userID string, entry *model.HistoryEntry) error
	// LoadHistory returns at most limit entries, most recently closed first.
	LoadHistory(ctx context.Context, userID string, limit int) ([]model.HistoryEntry, error)
}

// Identity is the authentication collaborator. The core only needs to know
// whether a user is present and their stable identifier; a no-op
// implementation reports no user.
type Identity interface {
	CurrentUser() (string, bool)
}

// Sharer is the share/export collaborator. It consumes a finished
// plain-text report; how it is delivered (share sheet, clipboard, stdout)
// is not the core's concern.
type Sharer interface {
	Share(ctx context.Context, title, text string) error
}

// Confirmer gates destructive operations on explicit user confirmation.
// Declining is a no-op, not an error.
type Confirmer interface {
	Confirm(prompt string) bool
}

// RetryOptions configures retry behavior for export operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
