package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/raffles-api/internal/api"
	"github.com/vietanh2810/raffles-api/internal/cache"
	"github.com/vietanh2810/raffles-api/internal/config"
	"github.com/vietanh2810/raffles-api/internal/db"
	"github.com/vietanh2810/raffles-api/internal/logger"
	"github.com/vietanh2810/raffles-api/internal/media"
	cloudinarystore "github.com/vietanh2810/raffles-api/internal/media/cloudinary"
	localstore "github.com/vietanh2810/raffles-api/internal/media/local"
	s3store "github.com/vietanh2810/raffles-api/internal/media/s3"
	"github.com/vietanh2810/raffles-api/internal/session"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Watch(configPath, func(next *config.AppConfig) {
		if err := logger.SetLevel(next.Log.Level); err != nil {
			zap.L().Warn("ignoring log level from reloaded config", zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("log_level", next.Log.Level))
	})
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if err = logger.SetLevel(conf.Log.Level); err != nil {
		return fmt.Errorf("failed to set log level -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	cacheStore, err := openCache(ctx, conf)
	if err != nil {
		return fmt.Errorf("failed to initialize cache -> %w", err)
	}

	mediaStore, err := openMedia(ctx, conf.Media)
	if err != nil {
		return fmt.Errorf("failed to initialize media store -> %w", err)
	}

	s := api.NewServer(conf, database, mediaStore, cacheStore)
	go s.Feed.Run(ctx)
	go pruneSessions(ctx, s.Sessions, conf.Session.PruneInterval)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// openCache shares entries through Redis when a URL is configured and keeps them in
// process otherwise.
func openCache(ctx context.Context, conf *config.AppConfig) (cache.Store, error) {
	if conf.Redis.URL == "" {
		zap.L().Info("using in-process cache")
		return cache.NewMemoryStore(conf.Cache.Size, conf.Cache.TTL), nil
	}

	client, err := cache.OpenRedis(ctx, conf.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("cache.OpenRedis -> %w", err)
	}
	zap.L().Info("using redis cache", zap.String("prefix", conf.Redis.Prefix))

	return cache.NewRedisStore(client, conf.Redis.Prefix), nil
}

func openMedia(ctx context.Context, conf *config.MediaConfig) (media.Store, error) {
	var (
		store media.Store
		err   error
	)

	switch conf.Driver {
	case "cloudinary":
		store, err = cloudinarystore.New(conf.CloudinaryURL)
	case "s3":
		store, err = s3store.New(ctx, s3store.Config{
			Endpoint:        conf.S3.Endpoint,
			Region:          conf.S3.Region,
			AccessKeyID:     conf.S3.AccessKeyID,
			SecretAccessKey: conf.S3.SecretAccessKey,
			Bucket:          conf.S3.Bucket,
			PublicBaseURL:   conf.S3.PublicBaseURL,
		})
	case "local":
		store, err = localstore.New(conf.Local.Path, conf.Local.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown media driver %q", conf.Driver)
	}
	if err != nil {
		return nil, err
	}
	zap.L().Info("media store ready", zap.String("driver", conf.Driver))

	return media.WithTimeout(store, conf.Timeout), nil
}

func pruneSessions(ctx context.Context, sessions *session.Manager, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.Prune(ctx)
			if err != nil {
				zap.L().Warn("failed to prune sessions", zap.Error(err))
				continue
			}
			zap.L().Debug("pruned expired sessions", zap.Int64("count", n))
		}
	}
}
