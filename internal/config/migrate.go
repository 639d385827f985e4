package config

import "fmt"

// migrate walks cfg forward one schema version at a time until it reaches
// CurrentVersion.
func migrate(cfg *Config) error {
	switch {
	case cfg.Version == CurrentVersion:
		return nil
	case cfg.Version > CurrentVersion:
		return fmt.Errorf("%w: config version %d is newer than supported version %d (upgrade tasklist)",
			ErrInvalid, cfg.Version, CurrentVersion)
	case cfg.Version < 0:
		return fmt.Errorf("%w: config version %d is invalid", ErrInvalid, cfg.Version)
	}

	for cfg.Version < CurrentVersion {
		step, ok := migrations[cfg.Version]
		if !ok {
			return fmt.Errorf("%w: no migration path from version %d", ErrInvalid, cfg.Version)
		}
		from := cfg.Version
		if err := step(cfg); err != nil {
			return fmt.Errorf("migrating config from v%d: %w", from, err)
		}
		if cfg.Version != from+1 {
			return fmt.Errorf("migrating config from v%d: step left version at %d", from, cfg.Version)
		}
	}
	return nil
}

// migrations maps a schema version to the step that upgrades it by one.
var migrations = map[int]func(*Config) error{
	0: migrateV0ToV1,
}

// migrateV0ToV1 upgrades files written before the version key existed.
// Version 0 kept the print sort field at the top level.
func migrateV0ToV1(cfg *Config) error {
	if cfg.LegacySort != "" {
		cfg.Print.Sort = cfg.LegacySort
		cfg.LegacySort = ""
	}
	cfg.Version = 1
	return nil
}
