package main

import (
	"context"
	"log/slog"
	"os"

	"tracker/config"
	"tracker/internal/delivery"
	"tracker/internal/delivery/http"
	"tracker/internal/delivery/http/router/handler"
	"tracker/internal/domain/lifecycle"
	"tracker/internal/infra/cache"
	"tracker/internal/infra/location"
	logs "tracker/internal/infra/log"
	"tracker/internal/infra/notification"
	"tracker/internal/infra/pubsub"
	"tracker/internal/infra/routeclient"
	"tracker/internal/usecase"
	"tracker/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			registerForwarder,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			cache.NewSnapshotStore,
		),
		routeclient.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			location.NewLocationSensor,
			notification.NewNotificationService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationTrigger,
			impl.NewTrackingService,
			impl.NewRouteService,
			impl.NewHistoryService,
			impl.NewMilestoneForwarder,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTrackingHandler,
			handler.NewRouteHandler,
			handler.NewHealthHandler,
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

// registerForwarder copies every milestone to the publisher and the snapshot
// store, and ends the active delivery before the forwarder drains.
func registerForwarder(
	lc fx.Lifecycle,
	tracking usecase.TrackingUsecase,
	forwarder *impl.MilestoneForwarder,
	trigger *impl.NotificationTrigger,
	logger *slog.Logger,
) {
	var listenerID usecase.ListenerID

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			forwarder.Start()
			listenerID = tracking.AddMilestoneListener(forwarder.Handle)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			tracking.StopTracking(stopCtx)
			tracking.RemoveMilestoneListener(listenerID)
			trigger.Wait()

			logger.Info("Draining milestone forwarder")

			return forwarder.Stop(stopCtx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
