// Package database manages the process-wide gorm connection.
package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tessera-live/tessera/internal/shared/config"
	"github.com/tessera-live/tessera/internal/shared/logger"
)

var (
	conn   *gorm.DB
	connMu sync.RWMutex
)

// Init opens the MySQL connection, configures the pool and verifies it with
// a ping. The connection is then available through Get.
func Init(cfg *config.DatabaseConfig) error {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.New(&slogWriter{}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		PrepareStmt: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	connMu.Lock()
	conn = db
	connMu.Unlock()

	logger.Info("database connection established", "database", cfg.Database)
	return nil
}

func Get() *gorm.DB {
	connMu.RLock()
	defer connMu.RUnlock()
	return conn
}

func Close() error {
	connMu.RLock()
	current := conn
	connMu.RUnlock()

	if current == nil {
		return nil
	}

	sqlDB, err := current.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	logger.Info("database connection closed")
	return nil
}

// slogWriter routes gorm's log lines into the structured logger.
type slogWriter struct{}

func (slogWriter) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	switch {
	case strings.Contains(msg, "SLOW SQL"):
		logger.Warn("slow query", "details", msg)
	case strings.Contains(msg, "[error]") || strings.Contains(msg, "ERROR"):
		logger.Error("database error", "details", msg)
	default:
		logger.Debug("database query", "details", msg)
	}
}
