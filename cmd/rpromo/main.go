package main

import (
	"context"
	"log/slog"
	"os"

	"rpromo/config"
	"rpromo/internal/delivery"
	"rpromo/internal/delivery/http"
	"rpromo/internal/delivery/http/middleware"
	"rpromo/internal/delivery/http/router/handler"
	"rpromo/internal/domain/repository"
	"rpromo/internal/infra/auth"
	logs "rpromo/internal/infra/log"
	"rpromo/internal/infra/persistence/localfile"
	"rpromo/internal/infra/persistence/postgres"
	"rpromo/internal/infra/photo"
	"rpromo/internal/infra/photostore"
	"rpromo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				newLocalProvider,
				fx.ResultTags(`name:"localfile"`),
			),
			fx.Annotate(
				postgres.NewPersonProvider,
				fx.ResultTags(`name:"postgres"`),
			),
			postgres.NewAccountRepository,
			photostore.New,
		),
	)
}

// newLocalProvider builds the localfile provider from the configured data
// directory.
func newLocalProvider(cfg *config.Config) (repository.PersonProvider, error) {
	return localfile.NewPersonProvider(cfg.Storage.DataPath)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			photo.NewProcessor,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProviderSelector,
			impl.NewPersonRegistry,
			impl.NewProviderService,
			impl.NewPhotoService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestContextMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPersonHandler,
			handler.NewPhotoHandler,
			handler.NewAuthHandler,
			handler.NewProviderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
