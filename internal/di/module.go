package di

import (
	"go.uber.org/fx"

	"github.com/akarpov/retailhub/internal/app"
	"github.com/akarpov/retailhub/internal/config"
	"github.com/akarpov/retailhub/internal/logger"
	"github.com/akarpov/retailhub/internal/metrics"
	"github.com/akarpov/retailhub/internal/pkg/auth"
	"github.com/akarpov/retailhub/internal/server/http/router"
	"github.com/akarpov/retailhub/internal/storage/postgres"
	"github.com/akarpov/retailhub/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		metrics.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
