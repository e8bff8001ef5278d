package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/ports"
)

// SQLiteRepository implements ports.RecentRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.RecentRepository = (*SQLiteRepository)(nil)

// gormLogger routes GORM logs to the xrf logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv(logging.EnvDebug) == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the TUI and SSH sessions share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&RecentModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate recent resources schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath creates a new SQLiteRepository inside an XRF_HOME directory
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// List implements RecentReader.List. An empty editor lists all editors;
// a non-positive limit returns every record.
func (r *SQLiteRepository) List(ctx context.Context, editor domain.EditorKind, limit int) ([]domain.RecentResource, error) {
	var models []RecentModel

	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("opened_at DESC")
		if editor != "" {
			query = query.Where("editor = ?", string(editor))
		}
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent resources: %w", err)
	}

	result := make([]domain.RecentResource, len(models))
	for i, m := range models {
		result[i] = recentModelToDomain(m)
	}
	return result, nil
}

// Latest implements RecentReader.Latest. It returns nil when nothing was recorded.
func (r *SQLiteRepository) Latest(ctx context.Context, editor domain.EditorKind) (*domain.RecentResource, error) {
	var model RecentModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("editor = ?", string(editor)).
			Order("opened_at DESC").
			First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest recent resource: %w", err)
	}

	result := recentModelToDomain(model)
	return &result, nil
}

// Record implements RecentWriter.Record. Opening the same resource again
// refreshes its label and timestamp instead of adding a new row.
func (r *SQLiteRepository) Record(ctx context.Context, resource domain.RecentResource) error {
	if resource.OpenedAt.IsZero() {
		resource.OpenedAt = time.Now().UTC()
	}
	model := domainToRecentModel(resource)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing RecentModel
			err := tx.Where("resource_key = ?", model.ResourceKey).First(&existing).Error
			if err == nil {
				return tx.Model(&existing).Updates(map[string]any{
					"label":     model.Label,
					"opened_at": model.OpenedAt,
				}).Error
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			if model.ID == "" {
				model.ID = uuid.New().String()
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to record recent resource: %w", err)
			}
			return nil
		})
	}, 3)
}

// Delete implements RecentWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&RecentModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("recent resource %s not found", id)
		}
		return nil
	}, 3)
}

// Prune implements RecentWriter.Prune, keeping the newest keep records of editor
func (r *SQLiteRepository) Prune(ctx context.Context, editor domain.EditorKind, keep int) error {
	if keep < 0 {
		keep = 0
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var keepIDs []string
			if err := tx.Model(&RecentModel{}).
				Where("editor = ?", string(editor)).
				Order("opened_at DESC").
				Limit(keep).
				Pluck("id", &keepIDs).Error; err != nil {
				return err
			}

			query := tx.Where("editor = ?", string(editor))
			if len(keepIDs) > 0 {
				query = query.Where("id NOT IN ?", keepIDs)
			}
			return query.Delete(&RecentModel{}).Error
		})
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
