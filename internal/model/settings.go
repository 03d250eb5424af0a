package model

// DefaultDailyGoal is the net-earnings target seeded on first run (COP).
const DefaultDailyGoal = 270000

// StorageMode selects where shift data is persisted.
type StorageMode string

const (
	// StorageLocal keeps data on-device only.
	StorageLocal StorageMode = "local"
	// StorageRemote mirrors data to the remote collaborator as well.
	StorageRemote StorageMode = "remote"
)

// Settings holds the process-wide configuration: the daily goal, the
// platform registry, and the storage mode. Created once with defaults and
// persisted on every save.
type Settings struct {
	StorageMode StorageMode
	Platforms   []Platform
	DailyGoal   float64
}

// DefaultSettings returns a fresh settings object with the default goal
// and a deep copy of the platform seed.
func DefaultSettings() Settings {
	return Settings{
		DailyGoal:   DefaultDailyGoal,
		StorageMode: StorageLocal,
		Platforms:   DefaultPlatforms(),
	}
}

// PlatformByID returns the platform with the given id, or nil if absent.
func (s *Settings) PlatformByID(id string) *Platform {
	for i := range s.Platforms {
		if s.Platforms[i].ID == id {
			return &s.Platforms[i]
		}
	}
	return nil
}

// ResolveColor returns the registered color for a platform id, or the
// fallback gray when the id is unknown. It never fails.
func (s *Settings) ResolveColor(id string) string {
	if p := s.PlatformByID(id); p != nil {
		return p.Color
	}
	return FallbackPlatformColor
}
