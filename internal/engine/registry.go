package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rutaapp/rutaapp/internal/common"
	"github.com/rutaapp/rutaapp/internal/model"
)

// AddPlatform registers a new platform. The display name is uppercased and
// the id derived from it; a duplicate id or empty name is rejected with no
// state change.
func (e *ShiftEngine) AddPlatform(ctx context.Context, name, color string) (*model.Platform, error) {
	display := strings.ToUpper(strings.TrimSpace(name))
	if display == "" {
		return nil, common.NewUserError("enter the platform name", common.ErrEmptyName)
	}
	id := model.PlatformID(name)

	e.mu.Lock()
	if e.settings.PlatformByID(id) != nil {
		e.mu.Unlock()
		return nil, common.NewUserError("that platform already exists", common.ErrDuplicatePlatform)
	}
	platform := model.Platform{ID: id, Name: display, Color: color}
	e.settings.Platforms = append(e.settings.Platforms, platform)
	e.mu.Unlock()

	slog.Info("platform added", "id", id, "name", display)
	if err := e.persistSettings(ctx); err != nil {
		return nil, err
	}
	return &platform, nil
}

// RemovePlatform deletes a platform by id. Absent ids are a no-op. Trips
// referencing the removed platform keep their id and degrade to the
// fallback color.
func (e *ShiftEngine) RemovePlatform(ctx context.Context, id string) error {
	e.mu.Lock()
	kept := e.settings.Platforms[:0]
	for _, p := range e.settings.Platforms {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	e.settings.Platforms = kept
	e.mu.Unlock()

	return e.persistSettings(ctx)
}

// UpdatePlatformColor changes a platform's color in place. Absent ids are
// a no-op.
func (e *ShiftEngine) UpdatePlatformColor(ctx context.Context, id, color string) error {
	e.mu.Lock()
	if p := e.settings.PlatformByID(id); p != nil {
		p.Color = color
	}
	e.mu.Unlock()

	return e.persistSettings(ctx)
}

// ResolveColor returns the color for a platform id, falling back to the
// documented gray for orphaned references. Never fails.
func (e *ShiftEngine) ResolveColor(id string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.ResolveColor(id)
}

// SetDailyGoal updates the net-earnings target.
func (e *ShiftEngine) SetDailyGoal(ctx context.Context, goal float64) error {
	if goal <= 0 {
		return common.NewUserError("the daily goal must be greater than zero", common.ErrInvalidAmount)
	}

	e.mu.Lock()
	e.settings.DailyGoal = goal
	e.mu.Unlock()

	slog.Info("daily goal updated", "goal", goal)
	return e.persistSettings(ctx)
}

// SetBaseCash records the cash float the driver starts the day with. It is
// bookkeeping only; no reconciliation figure derives from it.
func (e *ShiftEngine) SetBaseCash(ctx context.Context, amount float64) error {
	if amount < 0 {
		return common.NewUserError("the cash base cannot be negative", common.ErrInvalidAmount)
	}
	return e.storage.SetBaseCash(ctx, amount)
}

// BaseCash returns the stored cash float, zero if never set.
func (e *ShiftEngine) BaseCash(ctx context.Context) (float64, error) {
	return e.storage.BaseCash(ctx)
}
