package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"venue-ops/internal/usecase/commands"

	"go.uber.org/fx"
)

const holdSweepInterval = time.Minute

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(startHoldSweeper),
)

// startHoldSweeper expires lapsed deposit holds on a fixed interval so
// abandoned bookings release their tables without user action.
func startHoldSweeper(lc fx.Lifecycle, bookingCommands commands.BookingCommands, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(holdSweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						expired, err := bookingCommands.ExpireDueHolds(ctx)
						if err != nil {
							logger.Warn("hold sweep failed", "error", err)
							continue
						}
						if expired > 0 {
							logger.Info("expired lapsed holds", "count", expired)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
