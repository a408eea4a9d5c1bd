package nakama

import (
	"context"
	"database/sql"

	"hungergames/internal/app"
	"hungergames/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires the simulation RPCs for the Nakama runtime. One
// orchestrator instance serves every room for the lifetime of the server.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("InitModule: Could not load game config: %v", err)
	}

	svc := app.NewService(
		NewNakamaRosterAdapter(nk),
		NewNakamaMatchStore(nk),
		NewNakamaChannelAnnouncer(nk),
		logger,
		nil,
	)

	if err := registerRPCs(initializer, svc); err != nil {
		return err
	}

	logger.Info("Hunger Games module loaded.")
	return nil
}
