//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"pawshare/internal/dbmysql"
	"pawshare/internal/notif"
	"pawshare/internal/video"
)

// InitializeApplication builds the fully wired application. The real
// body lives in wire_gen.go.
func InitializeApplication() (*Application, error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideClock,
		ProvideRunner,
		ProvideCache,
		ProvideMetadataProvider,
		ProvideFirebaseMessaging,
		ProvidePushTransport,
		ProvideSocialService,
		dbmysql.NewMySQL,
		dbmysql.NewVideoRepository,
		dbmysql.NewFollowRepository,
		dbmysql.NewNotificationRepository,
		dbmysql.NewPreferenceRepository,
		dbmysql.NewSubscriptionRepository,
		dbmysql.NewSearchHistoryRepository,
		video.NewService,
		notif.NewService,
		NewApplication,
	)
	return &Application{}, nil
}
