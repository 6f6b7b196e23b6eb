// Package lock provides the account lockers used to serialize updates to a
// single customer or workshop.
package lock

import (
	"context"
	"log/slog"

	"pitstop/config"
	"pitstop/internal/domain/constants"
	"pitstop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the account locker, injected by Fx
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Ctx       context.Context
}

// NewAccountLocker creates the locker named by lock.provider.
func NewAccountLocker(params Params) (service.AccountLocker, error) {
	cfg := params.Config.Lock
	if cfg == nil {
		params.Logger.Info("Lock configuration not found, using in-memory locker")

		return NewMemoryLocker(), nil
	}

	switch cfg.Provider {
	case constants.LockProviderMemory, "":
		params.Logger.Info("Using in-memory account locker")

		return NewMemoryLocker(), nil

	case constants.LockProviderRedis:
		if params.Config.Redis == nil {
			return nil, errors.New("redis configuration is required for redis lock provider")
		}

		client, err := NewRedisClient(params.Ctx, params.Config.Redis)
		if err != nil {
			return nil, err
		}

		params.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		params.Logger.Info("Using redis account locker",
			slog.String("addr", params.Config.Redis.Addr()),
			slog.Duration("ttl", cfg.TTL),
		)

		return NewRedisLocker(client, cfg.TTL, cfg.RetryInterval, params.Logger), nil

	default:
		return nil, errors.Errorf("unsupported lock provider: %s", cfg.Provider)
	}
}

// Module provides the lock FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAccountLocker),
)
