package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ats-match-go/internal/config"
	"ats-match-go/internal/storage/models"
)

// MySQL 关系型数据库适配器，负责匹配记录的持久化
type MySQL struct {
	db *gorm.DB
}

// NewMySQL 创建MySQL适配器并自动迁移表结构
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	if cfg == nil || cfg.Host == "" {
		return nil, fmt.Errorf("MySQL配置不能为空")
	}

	timeout := cfg.ConnectTimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database, timeout)

	logLevel := gormlogger.Warn
	if cfg.LogLevel >= 1 && cfg.LogLevel <= 4 {
		logLevel = gormlogger.LogLevel(cfg.LogLevel)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层数据库连接失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	if cfg.ConnMaxLifetimeMinutes > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	}

	m := &MySQL{db: db}
	if err := m.autoMigrateSchema(); err != nil {
		return nil, err
	}

	return m, nil
}

// autoMigrateSchema 自动迁移表结构
func (m *MySQL) autoMigrateSchema() error {
	if err := m.db.AutoMigrate(&models.MatchRecord{}); err != nil {
		return fmt.Errorf("自动迁移表结构失败: %w", err)
	}
	return nil
}

// DB 返回底层gorm.DB实例
func (m *MySQL) DB() *gorm.DB {
	return m.db
}

// Close 关闭数据库连接
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveMatchRecord 保存一条匹配评分记录
func (m *MySQL) SaveMatchRecord(ctx context.Context, record *models.MatchRecord) error {
	if record == nil {
		return fmt.Errorf("匹配记录不能为空")
	}
	if err := m.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("保存匹配记录失败: %w", err)
	}
	return nil
}

// ListMatchRecordsByCandidate 按候选人查询匹配记录，按时间倒序
func (m *MySQL) ListMatchRecordsByCandidate(ctx context.Context, candidateID string, limit int) ([]models.MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []models.MatchRecord
	err := m.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("查询匹配记录失败: %w", err)
	}
	return records, nil
}
