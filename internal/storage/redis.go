package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ats-match-go/internal/config"
	"ats-match-go/internal/constants"
)

// ErrNotFound 键不存在
var ErrNotFound = errors.New("storage: key not found")

// Redis 键值存储适配器
// 引擎是输入的纯函数，因此匹配报告可以按输入内容寻址安全地缓存
type Redis struct {
	Client *redis.Client

	reportTTL time.Duration
}

// NewRedisAdapter 创建Redis适配器
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil || cfg.Address == "" {
		return nil, fmt.Errorf("Redis配置不能为空")
	}

	opts := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeoutSeconds > 0 {
		opts.DialTimeout = time.Duration(cfg.DialTimeoutSeconds) * time.Second
	}
	if cfg.ReadTimeoutSeconds > 0 {
		opts.ReadTimeout = time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	}
	if cfg.WriteTimeoutSeconds > 0 {
		opts.WriteTimeout = time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		closeErr := client.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("连接Redis失败: %v (关闭客户端也失败: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}

	reportTTL := constants.ReportCacheDuration
	if cfg.ReportCacheTTLMinutes > 0 {
		reportTTL = time.Duration(cfg.ReportCacheTTLMinutes) * time.Minute
	}

	return &Redis{Client: client, reportTTL: reportTTL}, nil
}

// Close 关闭Redis连接
func (r *Redis) Close() error {
	return r.Client.Close()
}

// Ping 检查Redis连通性
func (r *Redis) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// reportKey 组装报告缓存键
func (r *Redis) reportKey(contentMD5 string) string {
	return fmt.Sprintf(constants.KeyMatchReport, contentMD5)
}

// GetMatchReport 按内容摘要读取缓存的报告JSON
// 未命中时返回ErrNotFound
func (r *Redis) GetMatchReport(ctx context.Context, contentMD5 string) (string, error) {
	val, err := r.Client.Get(ctx, r.reportKey(contentMD5)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("读取报告缓存失败: %w", err)
	}
	return val, nil
}

// SetMatchReport 按内容摘要写入报告JSON，使用配置的TTL
func (r *Redis) SetMatchReport(ctx context.Context, contentMD5 string, reportJSON string) error {
	if err := r.Client.Set(ctx, r.reportKey(contentMD5), reportJSON, r.reportTTL).Err(); err != nil {
		return fmt.Errorf("写入报告缓存失败: %w", err)
	}
	return nil
}
