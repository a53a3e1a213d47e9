package routeclient

import (
	"context"
	"log/slog"

	"tracker/config"
	"tracker/internal/domain/service"
	"tracker/internal/infra/realtime"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// routeOptimizationClient joins the HTTP client and the real-time channel.
type routeOptimizationClient struct {
	*Client
	*realtime.Channel
}

// Combine builds a service.RouteOptimizationClient from its two halves.
func Combine(api *Client, channel *realtime.Channel) service.RouteOptimizationClient {
	return &routeOptimizationClient{Client: api, Channel: channel}
}

// ClientParams holds dependencies for the route service client, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRouteOptimizationClient creates the HTTP client and the real-time channel
// from configuration. The channel connects on start and closes on stop.
func NewRouteOptimizationClient(params ClientParams) (service.RouteOptimizationClient, error) {
	cfg := params.Config.RouteService
	if cfg == nil {
		return nil, errors.New("routeService configuration is required")
	}

	api, err := New(cfg.BaseURL, cfg.RequestTimeout, params.Logger)
	if err != nil {
		return nil, err
	}

	channel := realtime.NewChannel(cfg.SocketURL, cfg.ReconnectMin, cfg.ReconnectMax, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.Info("Connecting real-time channel", slog.String("url", cfg.SocketURL))
			channel.Start(ctx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing real-time channel")

			return channel.Close()
		},
	})

	return Combine(api, channel), nil
}

// Module provides the route service client FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRouteOptimizationClient),
)
