package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"ats-match-go/internal/scoring"
)

// ServerConfig 定义HTTP服务器配置
type ServerConfig struct {
	Address string `yaml:"address"` // 例如 ":8080" or "0.0.0.0:8080"
	// 限流设置，RateLimitQPM<=0时关闭限流
	RateLimitQPM      int `yaml:"rate_limit_qpm"`      // 每分钟允许的请求数
	RateLimitCapacity int `yaml:"rate_limit_capacity"` // 令牌桶容量，缺省为QPM的一半
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
}

// MySQLConfig MySQL配置结构
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	// 连接池设置
	MaxIdleConns int `yaml:"max_idle_conns"` // 最大空闲连接数
	MaxOpenConns int `yaml:"max_open_conns"` // 最大打开连接数
	// 连接生命周期
	ConnMaxLifetimeMinutes int `yaml:"conn_max_lifetime_minutes"` // 连接最大生命周期(分钟)
	// 超时设置
	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds"` // 连接超时(秒)
	// 日志设置
	LogLevel int `yaml:"log_level"` // 日志级别(1-4)
}

// RedisConfig Redis配置结构
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// 连接池设置
	PoolSize     int `yaml:"pool_size"`      // 连接池大小
	MinIdleConns int `yaml:"min_idle_conns"` // 最小空闲连接数
	// 超时设置
	DialTimeoutSeconds  int `yaml:"dial_timeout_seconds"`  // 连接超时(秒)
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`  // 读取超时(秒)
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"` // 写入超时(秒)
	// 报告缓存过期时间(分钟)
	ReportCacheTTLMinutes int `yaml:"report_cache_ttl_minutes"`
}

// MatchConfig 匹配引擎配置：权重与技能词表均为版本化的静态配置，
// 进程启动后视为不可变
type MatchConfig struct {
	// Weights 子分数聚合权重，缺省时使用内置默认值
	Weights *scoring.Weights `yaml:"weights,omitempty"`
	// SkillDatabase 技能词表覆盖，缺省时使用内置词表
	SkillDatabase map[string][]string `yaml:"skill_database,omitempty"`
}

// Config 应用程序配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Logger LoggerConfig `yaml:"logger"`
	MySQL  MySQLConfig  `yaml:"mysql"`
	Redis  RedisConfig  `yaml:"redis"`
	Match  MatchConfig  `yaml:"match"`
}

// LoadConfig 从文件加载配置
// 路径为空时返回默认配置，保证引擎在零配置下也可运行
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		config := defaultConfig()
		applyDefaults(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 从环境变量覆盖敏感配置（如果存在）
	if envPwd := os.Getenv("ATS_MYSQL_PASSWORD"); envPwd != "" {
		config.MySQL.Password = envPwd
	}
	if envPwd := os.Getenv("ATS_REDIS_PASSWORD"); envPwd != "" {
		config.Redis.Password = envPwd
	}

	applyDefaults(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// defaultConfig 返回零配置启动时的基础默认值
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Address: ":8080"},
		Logger: LoggerConfig{Level: "info", Format: "json"},
	}
}

// applyDefaults 填充未设置的默认值
func applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Redis.ReportCacheTTLMinutes <= 0 {
		config.Redis.ReportCacheTTLMinutes = 60
	}
	if config.MySQL.MaxIdleConns <= 0 {
		config.MySQL.MaxIdleConns = 10
	}
	if config.MySQL.MaxOpenConns <= 0 {
		config.MySQL.MaxOpenConns = 50
	}
}

// Validate 启动期配置校验
// 权重总和偏离1.0或词表结构非法都是致命错误；引擎本身假定配置已通过校验，
// 每次匹配调用时不会重新检查
func (c *Config) Validate() error {
	if c.Match.Weights != nil {
		if diff := math.Abs(c.Match.Weights.Sum() - 1.0); diff >= 1e-9 {
			return fmt.Errorf("评分权重总和必须为1.0，当前为 %v", c.Match.Weights.Sum())
		}
	}
	for name, variants := range c.Match.SkillDatabase {
		if name == "" {
			return fmt.Errorf("技能词表包含空的规范技能名")
		}
		if len(variants) == 0 {
			return fmt.Errorf("技能 %q 没有任何变体", name)
		}
	}
	return nil
}

// ScoringWeights 返回生效的评分权重
func (c *Config) ScoringWeights() scoring.Weights {
	if c.Match.Weights != nil {
		return *c.Match.Weights
	}
	return scoring.DefaultWeights()
}
