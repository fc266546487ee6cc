package dbmysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pawshare/internal/config"
)

// NewMySQL returns a GORM DB instance connected to MySQL. TranslateError
// is enabled so unique-index violations surface as gorm.ErrDuplicatedKey.
func NewMySQL(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// AutoMigrate creates or updates the core tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Video{},
		&Tag{},
		&Follow{},
		&NotificationPreference{},
		&Notification{},
		&PushSubscription{},
		&SearchHistory{},
	)
}
