package bootstrap

import (
	"venue-ops/internal/infra/device"
	"venue-ops/internal/infra/scanstore"
	"venue-ops/internal/infra/syncclient"
	"venue-ops/internal/pkg/config"
	"venue-ops/internal/usecase/commands"

	"go.uber.org/fx"
)

// CheckInModule wires the door-scan infrastructure: the durable
// offline queue, the backend sync client, the connectivity signal and
// this device's identity.
var CheckInModule = fx.Module("checkin",
	fx.Provide(
		func(cfg config.Config) *scanstore.FileStore {
			return scanstore.NewFileStore(cfg.CheckIn.StoragePath)
		},
		func(cfg config.Config) *syncclient.Client {
			return syncclient.NewClient(cfg.CheckIn)
		},
		func(cfg config.Config) *syncclient.Reachability {
			return syncclient.NewReachability(cfg.CheckIn.AssumeOnline)
		},
		func(cfg config.Config) *device.Identity {
			return device.NewIdentity(cfg.CheckIn)
		},
		func(s *scanstore.FileStore) commands.ScanStore { return s },
		func(c *syncclient.Client) commands.ScanSyncer { return c },
		func(r *syncclient.Reachability) commands.Reachability { return r },
		func(i *device.Identity) commands.DeviceIdentity { return i },
	),
)
