package device

import (
	"venue-ops/internal/pkg/config"

	"github.com/google/uuid"
)

// Identity is the device identifier handed to the backend with every
// scan. Configured explicitly in production; a fresh UUID per process
// otherwise (matching how unprovisioned door devices self-identify).
type Identity struct {
	id string
}

func NewIdentity(cfg config.CheckInConfig) *Identity {
	id := cfg.DeviceID
	if id == "" {
		id = uuid.NewString()
	}
	return &Identity{id: id}
}

func (i *Identity) DeviceID() string {
	return i.id
}
