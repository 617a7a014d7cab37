package filestore

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/devansh6012/online-store-test/internal/config"
)

// Module exposes disk store implementation to fx graph.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (Store, error) {
	return NewDiskStore(p.Config.UploadDir, p.Logger)
}
