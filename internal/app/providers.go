package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhng-ct/commerce-bot/internal/catalog"
	"github.com/minhng-ct/commerce-bot/internal/config"
	"github.com/minhng-ct/commerce-bot/internal/repo/leadstore"
	"github.com/minhng-ct/commerce-bot/internal/repo/memory"
	"github.com/minhng-ct/commerce-bot/internal/repo/mongodb"
	"github.com/minhng-ct/commerce-bot/internal/repo/postgres"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

func newCatalog(conf *config.Config) *catalog.Index {
	return catalog.Load(conf.Catalog.Path)
}

// newLeadStore picks the persistence backend from configuration. The
// engine only ever depends on the leadstore.Store interface.
func newLeadStore(lc fx.Lifecycle, conf *config.Config) (leadstore.Store, error) {
	switch conf.LeadStore.Backend {
	case leadstore.KindMongo:
		db, err := newMongoDB(lc, conf)
		if err != nil {
			return nil, err
		}
		return mongodb.NewLeadRepository(db), nil
	case leadstore.KindPostgres:
		return newPostgresLeadStore(lc, conf)
	case leadstore.KindMemory:
		return memory.NewLeadStore(), nil
	default:
		return nil, fmt.Errorf("unknown lead store backend %q", conf.LeadStore.Backend)
	}
}

func newMongoDB(lc fx.Lifecycle, conf *config.Config) (*mongodb.DB, error) {
	opts := options.Client().
		SetAppName("commerce-bot").
		ApplyURI(conf.Database.URI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("init mongo client: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		},
		OnStop: func(ctx context.Context) error {
			return mongoClient.Disconnect(ctx)
		},
	})

	return &mongodb.DB{
		Client:   mongoClient,
		Database: mongoClient.Database(conf.Database.Database),
	}, nil
}

func newPostgresLeadStore(lc fx.Lifecycle, conf *config.Config) (leadstore.Store, error) {
	pool, err := pgxpool.New(context.Background(), conf.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("init pgx pool: %w", err)
	}

	repo := postgres.NewLeadRepository(pool)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return fmt.Errorf("ping postgres: %w", err)
			}
			return repo.EnsureSchema(ctx)
		},
		OnStop: func(ctx context.Context) error {
			pool.Close()
			return nil
		},
	})

	return repo, nil
}
