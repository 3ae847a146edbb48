package models

import (
	"time"

	"gorm.io/datatypes"
)

// MatchRecord 匹配评分历史表
// 引擎本身无状态，这里只是服务层对每次评分结果的留痕，
// 供候选人查询历史得分与管理端统计使用
type MatchRecord struct {
	RecordUUID     string         `gorm:"type:char(36);primaryKey"`
	CandidateID    string         `gorm:"type:char(36);index:idx_mr_candidate_id"`
	JobID          string         `gorm:"type:char(36);index:idx_mr_job_id"`
	FinalScore     float64        `gorm:"type:double;not null"`
	ReadinessLevel string         `gorm:"type:varchar(50);not null"`
	Summary        string         `gorm:"type:varchar(255)"`
	ScoresJSON     datatypes.JSON `gorm:"type:json"` // ScoreBreakdown序列化
	ReportJSON     datatypes.JSON `gorm:"type:json"` // 完整MatchReport序列化
	EngineVersion  string         `gorm:"type:varchar(20)"`
	CreatedAt      time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);index:idx_mr_created_at"`
}

func (MatchRecord) TableName() string {
	return "match_records"
}
