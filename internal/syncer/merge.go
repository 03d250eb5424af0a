// Package syncer reconciles local state with the remote copy and owns the
// real-time subscription lifecycle.
package syncer

import (
	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/service"
)

// Diverged reports whether the remote shift should be applied over the
// local one. The heuristic is item counts: a remote copy with the same
// number of trips and expenses is assumed identical. This is a lightweight
// divergence detector, not a conflict resolver; concurrent edits that keep
// the counts equal go undetected (known gap, kept deliberately).
func Diverged(local, remote *model.Shift) bool {
	if remote == nil {
		return false
	}
	return len(remote.Trips) != len(local.Trips) || len(remote.Expenses) != len(local.Expenses)
}

// ApplyShift overlays the remote shift onto the local one when Diverged
// says so, and reports whether anything changed. The remote start time
// fills a missing local one but never overwrites a set one.
func ApplyShift(local, remote *model.Shift) bool {
	if !Diverged(local, remote) {
		return false
	}

	local.Trips = append([]model.Trip(nil), remote.Trips...)
	local.Expenses = append([]model.Expense(nil), remote.Expenses...)
	if local.StartedAt == nil && remote.StartedAt != nil {
		t := *remote.StartedAt
		local.StartedAt = &t
		local.Started = true
	}
	return true
}

// MergeSettings overlays remote settings onto local ones field-wise:
// remote fields win when present. An empty merged platform list restores
// the default seed so a bad remote document cannot leave the registry
// unusable.
func MergeSettings(local *model.Settings, remote *service.RemoteSettings) {
	if remote == nil {
		return
	}
	if remote.DailyGoal != nil {
		local.DailyGoal = *remote.DailyGoal
	}
	if remote.StorageMode != nil {
		local.StorageMode = *remote.StorageMode
	}
	if len(remote.Platforms) > 0 {
		local.Platforms = append([]model.Platform(nil), remote.Platforms...)
	}
	if len(local.Platforms) == 0 {
		local.Platforms = model.DefaultPlatforms()
	}
}
