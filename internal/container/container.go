package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joshua-takyi/live/internal/catalog"
	"github.com/joshua-takyi/live/internal/config"
	"github.com/joshua-takyi/live/internal/connect"
	"github.com/joshua-takyi/live/internal/helpers"
	"github.com/joshua-takyi/live/internal/metrics"
	"github.com/joshua-takyi/live/internal/models"
	"github.com/joshua-takyi/live/internal/services"
	"github.com/joshua-takyi/live/internal/session"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *slog.Logger
	Repo        models.BlobRepo
	Persister   *services.Persister
	Saves       *services.SaveQueue
	State       *session.State
	LiveService *services.LiveService
}

// OpenStore connects the blob backend selected by STORE_DRIVER.
func OpenStore(cfg *config.Config, logger *slog.Logger) (models.BlobRepo, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return models.MemoryNewRepo(), nil
	case config.DriverBadger:
		db, err := connect.BadgerOpen(cfg.BadgerPath, logger)
		if err != nil {
			return nil, err
		}
		return models.BadgerNewRepo(db, cfg.StoreNamespace), nil
	case config.DriverRedis:
		client, err := connect.RedisConnect(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return models.RedisNewRepo(client, cfg.StoreNamespace), nil
	case config.DriverMongo:
		client, err := connect.MongoDBConnect(cfg.MongoDBURI, cfg.MongoDBPassword)
		if err != nil {
			return nil, err
		}
		return models.MongodbNewRepo(client, cfg.StoreNamespace), nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}

// NewContainer restores persisted state, generates a fresh catalog around the
// profile and wires persistence as the state's change hook.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, repo models.BlobRepo, now time.Time) *Container {
	persister := services.NewPersister(repo, logger)
	snap := persister.Load(ctx)

	location := snap.User.Location.Coordinates
	if cfg.UserLocation != nil {
		location = *cfg.UserLocation
	}
	seed := cfg.CatalogSeed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}

	events := catalog.Generate(location, snap.User.TopArtists, catalog.NewSource(seed), now)
	metrics.SetCatalogSize(len(events))
	logger.Info("Catalog generated", "events", len(events), "seed", seed)

	state := session.New(events, snap)
	saves := services.NewSaveQueue(persister)
	state.OnChange(saves.Enqueue)

	liveService := services.NewLiveService(state, helpers.NewTicketIssuer(cfg.QRSecret), persister, services.LiveOptions{
		ServiceFee: cfg.ServiceFee,
		PremiumFee: cfg.PremiumFee,
	}, logger)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Repo:        repo,
		Persister:   persister,
		Saves:       saves,
		State:       state,
		LiveService: liveService,
	}
}

// Close flushes pending saves. Call it before disconnecting the store.
func (c *Container) Close() {
	c.Saves.Close()
}
