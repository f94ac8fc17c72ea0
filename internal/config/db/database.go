package db

import (
	"fmt"
	"time"

	"github.com/linskybing/simqueue/internal/config"
	"github.com/linskybing/simqueue/internal/domain/job"
	"github.com/linskybing/simqueue/internal/domain/project"
	"github.com/linskybing/simqueue/internal/domain/quota"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the PostgreSQL connection string from the loaded config.
func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)
}

// Open connects to PostgreSQL. The caller owns the returned pool.
func Open() (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(DSN()), &gorm.Config{
		Logger:         NewLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info().Str("host", config.DbHost).Str("db", config.DbName).Msg("Database connected")
	return gormDB, nil
}

// NewLogger routes gorm's logging through zerolog.
func NewLogger() logger.Interface {
	zl := log.With().Str("component", "gorm").Logger()
	return logger.New(&zl, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Models lists every persisted type in migration order.
func Models() []any {
	return []any{
		&job.DataItem{},
		&job.Job{},
		&job.Comment{},
		&job.Log{},
		&project.Project{},
		&quota.Quota{},
		&quota.Charge{},
	}
}

// Migrate creates or updates the schema.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
