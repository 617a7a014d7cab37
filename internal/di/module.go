package di

import (
	"github.com/devansh6012/online-store-test/internal/adapter/filestore"
	"github.com/devansh6012/online-store-test/internal/app"
	"github.com/devansh6012/online-store-test/internal/config"
	"github.com/devansh6012/online-store-test/internal/logger"
	"github.com/devansh6012/online-store-test/internal/pkg/auth"
	"github.com/devansh6012/online-store-test/internal/server/http/handlers"
	"github.com/devansh6012/online-store-test/internal/server/http/router"
	"github.com/devansh6012/online-store-test/internal/storage/postgres"
	"github.com/devansh6012/online-store-test/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		filestore.Module,
		usecase.Module,
		fx.Provide(func(facade *app.StoreFacade) handlers.StoreFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
