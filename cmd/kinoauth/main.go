package main

import (
	"context"
	"log/slog"
	"os"

	"kinoauth/config"
	"kinoauth/internal/delivery"
	"kinoauth/internal/delivery/http"
	"kinoauth/internal/delivery/http/middleware"
	"kinoauth/internal/delivery/http/router/handler"
	deliverymiddleware "kinoauth/internal/delivery/middleware"
	"kinoauth/internal/infra/auth"
	"kinoauth/internal/infra/cache"
	logs "kinoauth/internal/infra/log"
	"kinoauth/internal/infra/oauth"
	"kinoauth/internal/infra/persistence/postgres"
	"kinoauth/internal/usecase/impl"

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
		cache.New,
		cache.NewTTLStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewOAuthLinkRepository,
			postgres.NewHistoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTCodec,
			fx.Annotate(
				oauth.NewYandexProvider,
				fx.ResultTags(`group:"oauth_providers"`),
			),
			fx.Annotate(
				oauth.NewVKProvider,
				fx.ResultTags(`group:"oauth_providers"`),
			),
			oauth.NewRegistry,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewOAuthService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewOAuthHandler,
			handler.NewSessionHandler,
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
