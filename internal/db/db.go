package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"journey-report-service/internal/config"
)

const (
	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 2
	defaultConnLifetime = 30 * time.Minute
	pingTimeout         = 5 * time.Second
)

func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(cfg.DB.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}

	maxOpen := cfg.DB.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxIdle := cfg.DB.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	lifetime := defaultConnLifetime
	if cfg.DB.ConnMaxLifetime != "" {
		parsed, err := time.ParseDuration(cfg.DB.ConnMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err)
		}
		lifetime = parsed
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if cfg.DB.RunMigrations {
		if err := runMigrations(database); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info().Int("statements", len(migrationStatements)).Msg("database migrations applied")
	}

	log.Info().Int("max_open_conns", maxOpen).Dur("conn_max_lifetime", lifetime).Msg("database connected")
	return database, nil
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
