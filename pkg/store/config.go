package store

import (
	"tableflip.dev/advcontrol/pkg/config"
)

// Config locates the on-disk data directory.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the data directory from the user's configuration.
func LoadConfig() (Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
