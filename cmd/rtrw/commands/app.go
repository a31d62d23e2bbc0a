package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/rtrw/internal/api"
	"github.com/ougirez/rtrw/internal/domain"
	"github.com/ougirez/rtrw/internal/pkg/cache"
	"github.com/ougirez/rtrw/internal/pkg/constants"
	"github.com/ougirez/rtrw/internal/pkg/logger"
	"github.com/ougirez/rtrw/internal/pkg/store"
	"github.com/ougirez/rtrw/internal/pkg/store/localstore"
	"github.com/ougirez/rtrw/internal/pkg/store/xpgx"
	"github.com/ougirez/rtrw/internal/service/auth"
	"github.com/ougirez/rtrw/internal/service/business"
	"github.com/ougirez/rtrw/internal/service/dashboard"
	"github.com/ougirez/rtrw/internal/service/finance"
	"github.com/ougirez/rtrw/internal/service/importer"
	"github.com/ougirez/rtrw/internal/service/letter"
	"github.com/ougirez/rtrw/internal/service/migration"
	"github.com/ougirez/rtrw/internal/service/report"
	"github.com/ougirez/rtrw/internal/service/resident"
	"github.com/spf13/viper"
)

// application holds what every command needs. records is the remote store
// when it could be reached at startup and the local store otherwise.
type application struct {
	cache   cache.Cache
	local   *localstore.Store
	pool    xpgx.Pool
	remote  store.Store
	records store.Store

	services api.Services
}

func openApp(ctx context.Context) (*application, error) {
	app := &application{}

	c, err := openCache(ctx)
	if err != nil {
		return nil, err
	}
	app.cache = c
	app.local = localstore.New(c, localstore.Keys{
		Business: viper.GetString(constants.ViperCacheBusinessKey),
		Finance:  viper.GetString(constants.ViperCacheFinanceKey),
		Letter:   viper.GetString(constants.ViperCacheLetterKey),
		Resident: viper.GetString(constants.ViperCacheResidentKey),
		User:     viper.GetString(constants.ViperCacheUserKey),
	})

	app.pool, err = openPool(ctx)
	switch {
	case err != nil:
		logger.Warnf(ctx, "remote store unavailable, running on the local cache: %v", err)
	case app.pool != nil:
		app.remote = store.NewStore(app.pool)
	}

	app.records = app.local
	if app.remote != nil {
		app.records = app.remote
	}

	if viper.GetString(constants.ViperSecretKey) == "" {
		logger.Warnf(ctx, "%s is empty, auth tokens are signed with an empty key", constants.ViperSecretKey)
	}

	app.services = app.newServices()
	return app, nil
}

func (app *application) newServices() api.Services {
	var remote migration.Remote
	var prober dashboard.Prober
	if app.remote != nil {
		remote, prober = app.remote, app.remote
	}

	s := api.Services{
		Auth: auth.NewService(app.records, auth.Config{
			Secret:         viper.GetString(constants.ViperSecretKey),
			TokenTTL:       viper.GetDuration(constants.ViperTokenTTLKey),
			AllowedRegions: viper.GetStringSlice(constants.ViperRegionsKey),
		}),
		Businesses: business.NewBusinessService(app.records),
		Reports:    report.NewReportService(app.records),
		Migration:  migration.NewMigrationService(app.local.Businesses(), remote),
		Finance:    finance.NewFinanceService(app.records),
		Letters:    letter.NewLetterService(app.records),
		Residents:  resident.NewResidentService(app.records),
		Importer:   importer.NewImporterService(app.local.Businesses()),
	}
	s.Dashboard = dashboard.NewDashboardService(s.Reports, s.Businesses, s.Finance, s.Residents, s.Letters, prober)
	return s
}

func (app *application) Close() {
	if app.pool != nil {
		app.pool.Close()
	}
	if err := app.cache.Close(); err != nil {
		logger.Warnf(context.Background(), "close cache: %v", err)
	}
}

// identityOf resolves a username given on the command line.
func (app *application) identityOf(ctx context.Context, username string) (domain.Identity, error) {
	if username == "" {
		return domain.Identity{}, fmt.Errorf("--user is required")
	}
	user, err := app.records.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return domain.Identity{}, fmt.Errorf("user %q not found", username)
		}
		return domain.Identity{}, err
	}
	return user.Identity(), nil
}

// openCache is replaced in tests to share one in-process cache between
// command runs.
var openCache = dialCache

func dialCache(ctx context.Context) (cache.Cache, error) {
	addr := viper.GetString(constants.ViperRedisAddrKey)
	if addr == "" {
		logger.Warnf(ctx, "redis.addr not set, using an in-process cache")
		return cache.NewMemory(), nil
	}

	c, err := cache.NewRedis(ctx, cache.RedisOptions{
		Addr:     addr,
		Password: viper.GetString(constants.ViperRedisPasswordKey),
		DB:       viper.GetInt(constants.ViperRedisDBKey),
	})
	if err != nil {
		return nil, fmt.Errorf("cache.NewRedis: %w", err)
	}
	return c, nil
}

// openPool returns a nil pool when no DSN is configured.
func openPool(ctx context.Context) (xpgx.Pool, error) {
	dsn := viper.GetString(constants.ViperPostgresDSNKey)
	if dsn == "" {
		return nil, nil
	}

	pool, err := xpgx.NewPool(ctx, dsn, viper.GetInt32(constants.ViperPostgresMaxConnsKey))
	if err != nil {
		return nil, err
	}

	err = backoff.Retry(
		func() error {
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			if pingErr := pool.Ping(probeCtx); pingErr != nil {
				logger.Warnf(ctx, "postgres ping: %v", pingErr)
				return pingErr
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 5),
			ctx,
		),
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if err = store.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
