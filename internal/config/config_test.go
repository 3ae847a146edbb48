package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-match-go/internal/scoring"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadConfigEmptyPath 零配置启动时返回可用的默认配置
func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 60, cfg.Redis.ReportCacheTTLMinutes)
	assert.Nil(t, cfg.Match.Weights)
}

// TestLoadConfigMissingFile 显式指定的配置文件不存在时报错
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}

// TestLoadConfigFromFile 从YAML文件加载并填充默认值
func TestLoadConfigFromFile(t *testing.T) {
	path := writeTempConfig(t, `
server:
  address: ":9090"
logger:
  level: debug
  format: pretty
redis:
  address: "localhost:6379"
  report_cache_ttl_minutes: 30
match:
  weights:
    skill_match: 0.5
    experience_fit: 0.2
    project_relevance: 0.2
    bonus_signals: 0.1
  skill_database:
    python:
      - python
      - python3
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 30, cfg.Redis.ReportCacheTTLMinutes)
	require.NotNil(t, cfg.Match.Weights)
	assert.InDelta(t, 0.5, cfg.Match.Weights.SkillMatch, 1e-9)
	assert.Equal(t, []string{"python", "python3"}, cfg.Match.SkillDatabase["python"])
	// 未显式配置的连接池项回落到默认值
	assert.Equal(t, 10, cfg.MySQL.MaxIdleConns)
}

// TestLoadConfigEnvOverride 环境变量覆盖文件中的敏感配置
func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeTempConfig(t, `
mysql:
  password: "from-file"
redis:
  password: "from-file"
`)

	t.Setenv("ATS_MYSQL_PASSWORD", "from-env")
	t.Setenv("ATS_REDIS_PASSWORD", "from-env-redis")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.MySQL.Password)
	assert.Equal(t, "from-env-redis", cfg.Redis.Password)
}

// TestValidateRejectsBadWeights 权重总和偏离1.0是启动期致命错误
func TestValidateRejectsBadWeights(t *testing.T) {
	path := writeTempConfig(t, `
match:
  weights:
    skill_match: 0.5
    experience_fit: 0.5
    project_relevance: 0.2
    bonus_signals: 0.1
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

// TestValidateRejectsBadSkillDatabase 词表结构非法时拒绝启动
func TestValidateRejectsBadSkillDatabase(t *testing.T) {
	path := writeTempConfig(t, `
match:
  skill_database:
    python: []
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

// TestScoringWeightsFallback 未配置权重时使用内置默认值
func TestScoringWeightsFallback(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, scoring.DefaultWeights(), cfg.ScoringWeights())

	custom := scoring.Weights{SkillMatch: 0.7, ExperienceFit: 0.1, ProjectRelevance: 0.1, BonusSignals: 0.1}
	cfg.Match.Weights = &custom
	assert.Equal(t, custom, cfg.ScoringWeights())
}
