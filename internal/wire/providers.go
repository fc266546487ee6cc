package wire

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"pawshare/internal/common"
	"pawshare/internal/config"
	"pawshare/internal/dbmysql"
	"pawshare/internal/metadata"
	"pawshare/internal/notif"
	"pawshare/internal/searchcache"
	"pawshare/internal/social"
	"pawshare/internal/tasks"
	"pawshare/internal/video"
)

// Application bundles the wired core services.
type Application struct {
	Config *config.Config
	DB     *gorm.DB
	Logger zerolog.Logger
	Runner *tasks.Runner
	Videos *video.Service
	Social *social.Service
	Notifs *notif.Service
}

// NewApplication assembles the application and closes the video→notif
// trigger cycle via SetNotifier.
func NewApplication(
	cfg *config.Config,
	db *gorm.DB,
	logger zerolog.Logger,
	runner *tasks.Runner,
	videos *video.Service,
	socialSvc *social.Service,
	notifs *notif.Service,
) *Application {
	videos.SetNotifier(notifs)
	return &Application{
		Config: cfg,
		DB:     db,
		Logger: logger,
		Runner: runner,
		Videos: videos,
		Social: socialSvc,
		Notifs: notifs,
	}
}

// ProvideConfig loads and validates environment configuration.
func ProvideConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ProvideLogger builds the root zerolog logger from config.
func ProvideLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if cfg.Logging.Format == "console" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger
}

// ProvideClock supplies the wall clock.
func ProvideClock() common.Clock {
	return common.SystemClock()
}

// ProvideRunner builds the shared background task runner.
func ProvideRunner(cfg *config.Config, logger zerolog.Logger) *tasks.Runner {
	return tasks.NewRunner(cfg.Notification.Workers, cfg.Notification.ChannelBufferSize, logger)
}

// ProvideCache builds the search cache.
func ProvideCache(cfg *config.Config, clock common.Clock) *searchcache.Cache {
	return searchcache.New(cfg.Cache.TTL, cfg.Cache.MaxEntries, clock)
}

// ProvideMetadataProvider builds the external metadata client.
func ProvideMetadataProvider(cfg *config.Config, logger zerolog.Logger) metadata.Provider {
	return metadata.NewYouTubeClient(cfg, logger)
}

// ProvideFirebaseMessaging initializes the FCM client, or returns nil
// when Firebase is disabled.
func ProvideFirebaseMessaging(cfg *config.Config) (*messaging.Client, error) {
	if !cfg.Firebase.Enabled {
		return nil, nil
	}
	ctx := context.Background()
	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: cfg.Firebase.ProjectID},
		option.WithCredentialsFile(cfg.Firebase.CredentialsFilePath),
	)
	if err != nil {
		return nil, fmt.Errorf("firebase init: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase messaging init: %w", err)
	}
	return client, nil
}

// ProvidePushTransport wraps the FCM client, or disables push when the
// client is nil.
func ProvidePushTransport(client *messaging.Client) notif.PushTransport {
	if client == nil {
		return nil
	}
	return notif.NewFCMTransport(client)
}

// ProvideSocialService wires the social service with direct notifications.
func ProvideSocialService(
	follows dbmysql.FollowRepository,
	prefs dbmysql.PreferenceRepository,
	notifs *notif.Service,
	runner *tasks.Runner,
	logger zerolog.Logger,
) *social.Service {
	return social.NewService(follows, prefs, notifs, runner, logger)
}
