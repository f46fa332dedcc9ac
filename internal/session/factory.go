package session

import (
	"fmt"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/config"
)

// New builds the store selected by cfg.Session.Backend.
func New(cfg *config.AppConfig) (Store, error) {
	switch cfg.Session.Backend {
	case "", "redis":
		return NewRedis(cfg.Redis), nil
	case "badger":
		return NewBadger(cfg.Session.BadgerPath)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
