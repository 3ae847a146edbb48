package storage

import (
	"context"
	"fmt"
	"strings"

	"ats-match-go/internal/config"
	"ats-match-go/internal/logger"
)

// Storage 存储管理器，聚合所有存储相关依赖
// MySQL与Redis都是可选组件：两者都未配置时引擎仍可独立工作，
// 只是没有历史留痕和报告缓存
type Storage struct {
	// 关系型数据库
	MySQL *MySQL

	// 键值存储
	Redis *Redis
}

// NewStorage 创建存储管理器
// 单个组件初始化失败只记录警告，不阻塞启动
func NewStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	storage := &Storage{}
	var initErrors []string

	// 初始化MySQL（如果配置了）
	if cfg.MySQL.Host != "" {
		logger.Info().Str("host", cfg.MySQL.Host).Msg("初始化MySQL...")
		mysqlAdapter, err := NewMySQL(&cfg.MySQL)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化MySQL失败，匹配记录将不会持久化")
			initErrors = append(initErrors, fmt.Sprintf("MySQL: %v", err))
		} else {
			storage.MySQL = mysqlAdapter
			logger.Info().Msg("MySQL初始化成功")
		}
	} else {
		logger.Info().Msg("MySQL未配置, 跳过初始化")
	}

	// 初始化Redis（如果配置了）
	if cfg.Redis.Address != "" {
		logger.Info().Str("address", cfg.Redis.Address).Msg("初始化Redis...")
		redisAdapter, err := NewRedisAdapter(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("初始化Redis失败，报告缓存不可用")
			initErrors = append(initErrors, fmt.Sprintf("Redis: %v", err))
		} else {
			storage.Redis = redisAdapter
			logger.Info().Msg("Redis初始化成功")
		}
	} else {
		logger.Info().Msg("Redis未配置, 跳过初始化")
	}

	if len(initErrors) > 0 {
		logger.Warn().Str("errors", strings.Join(initErrors, "; ")).Msg("部分存储组件初始化失败")
	}

	return storage, nil
}

// Close 关闭所有连接
func (s *Storage) Close() {
	if s.MySQL != nil {
		if err := s.MySQL.Close(); err != nil {
			logger.Error().Err(err).Msg("关闭MySQL连接失败")
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			logger.Error().Err(err).Msg("关闭Redis连接失败")
		}
	}
}
