package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"os"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"
	"gorm.io/datatypes"

	"ats-match-go/internal/config"
	"ats-match-go/internal/constants"
	"ats-match-go/internal/matcher"
	"ats-match-go/internal/storage"
	"ats-match-go/internal/storage/models"
	"ats-match-go/internal/types"
	"ats-match-go/pkg/utils"
)

// MatchHandler 负责处理简历与JD匹配相关的请求
type MatchHandler struct {
	cfg     *config.Config
	storage *storage.Storage
	matcher *matcher.Matcher
	logger  *log.Logger
}

// NewMatchHandler 创建一个新的 MatchHandler 实例
func NewMatchHandler(cfg *config.Config, storage *storage.Storage, m *matcher.Matcher) *MatchHandler {
	return &MatchHandler{
		cfg:     cfg,
		storage: storage,
		matcher: m,
		logger:  log.New(os.Stdout, "[MatchHandler] ", log.LstdFlags|log.Lshortfile),
	}
}

// MatchRequest 匹配请求体
// 文本提取（PDF/DOCX转纯文本）由上游协作方完成，这里只接收UTF-8纯文本
type MatchRequest struct {
	ResumeText string `json:"resume_text"`
	JDText     string `json:"jd_text"`
	// CandidateID/JobID 可选，提供时匹配结果会写入历史记录
	CandidateID string `json:"candidate_id,omitempty"`
	JobID       string `json:"job_id,omitempty"`
}

// HandleCalculateMatch 处理快速评分请求，只返回总分与等级
// POST /api/v1/match
func (h *MatchHandler) HandleCalculateMatch(ctx context.Context, c *app.RequestContext) {
	req, ok := h.bindMatchRequest(c)
	if !ok {
		return
	}

	report := h.matchWithCache(ctx, req.ResumeText, req.JDText)
	h.persistRecord(ctx, req, report)

	c.JSON(consts.StatusOK, map[string]interface{}{
		"success":      true,
		"candidate_id": req.CandidateID,
		"job_id":       req.JobID,
		"ats_score":    int(math.Round(report.FinalScore)),
		"final_score":  report.FinalScore,
		"level":        report.ReadinessLevel,
		"summary":      report.Summary,
	})
}

// HandleMatchAnalysis 处理完整分析请求，返回报告明细、热力图与建议
// POST /api/v1/match/analysis
func (h *MatchHandler) HandleMatchAnalysis(ctx context.Context, c *app.RequestContext) {
	req, ok := h.bindMatchRequest(c)
	if !ok {
		return
	}

	report := h.matchWithCache(ctx, req.ResumeText, req.JDText)
	h.persistRecord(ctx, req, report)

	c.JSON(consts.StatusOK, map[string]interface{}{
		"success":           true,
		"candidate_id":      req.CandidateID,
		"job_id":            req.JobID,
		"ats_score":         int(math.Round(report.FinalScore)),
		"final_score":       report.FinalScore,
		"level":             report.ReadinessLevel,
		"summary":           report.Summary,
		"scores":            report.Scores,
		"strengths":         report.Strengths,
		"missing_required":  report.MissingRequired,
		"preferred_matched": report.PreferredMatched,
		"preferred_missing": report.PreferredMissing,
		"resume_details":    report.ResumeDetails,
		"jd_details":        report.JDDetails,
		"heatmap_data":      matcher.ProjectHeatmap(report),
		"recommendations":   recommendationsForScore(report.FinalScore),
	})
}

// HandleMatchHistory 查询候选人的历史匹配记录
// GET /api/v1/match/history/:candidate_id
func (h *MatchHandler) HandleMatchHistory(ctx context.Context, c *app.RequestContext) {
	candidateID := c.Param("candidate_id")
	if candidateID == "" {
		c.JSON(consts.StatusBadRequest, map[string]string{"error": "candidate_id 不能为空"})
		return
	}

	if h.storage == nil || h.storage.MySQL == nil {
		c.JSON(consts.StatusServiceUnavailable, map[string]string{"error": "历史记录存储未配置"})
		return
	}

	records, err := h.storage.MySQL.ListMatchRecordsByCandidate(ctx, candidateID, 20)
	if err != nil {
		h.logger.Printf("查询匹配历史失败 for CandidateID %s: %v", candidateID, err)
		c.JSON(consts.StatusInternalServerError, map[string]string{"error": "查询匹配历史失败"})
		return
	}

	c.JSON(consts.StatusOK, map[string]interface{}{
		"success":      true,
		"candidate_id": candidateID,
		"total_count":  len(records),
		"data":         records,
	})
}

// bindMatchRequest 解析并校验请求体，失败时直接写错误响应
func (h *MatchHandler) bindMatchRequest(c *app.RequestContext) (MatchRequest, bool) {
	var req MatchRequest
	if err := json.Unmarshal(c.Request.Body(), &req); err != nil {
		c.JSON(consts.StatusBadRequest, map[string]string{"error": "请求体解析失败"})
		return req, false
	}
	if req.ResumeText == "" {
		c.JSON(consts.StatusBadRequest, map[string]string{"error": "resume_text 不能为空"})
		return req, false
	}
	if req.JDText == "" {
		c.JSON(consts.StatusBadRequest, map[string]string{"error": "jd_text 不能为空"})
		return req, false
	}
	return req, true
}

// matchWithCache 先查报告缓存，未命中时执行匹配并回填
// 缓存读写失败只记录日志，永远不阻塞评分主流程
func (h *MatchHandler) matchWithCache(ctx context.Context, resumeText, jdText string) types.MatchReport {
	if h.storage == nil || h.storage.Redis == nil {
		return h.matcher.Match(resumeText, jdText)
	}

	cacheKey := utils.MatchCacheKey(resumeText, jdText)

	cached, err := h.storage.Redis.GetMatchReport(ctx, cacheKey)
	if err == nil {
		var report types.MatchReport
		if jsonErr := json.Unmarshal([]byte(cached), &report); jsonErr == nil {
			return report
		}
		h.logger.Printf("报告缓存反序列化失败 (key=%s)，回退到重新计算", cacheKey)
	} else if !errors.Is(err, storage.ErrNotFound) {
		h.logger.Printf("读取报告缓存失败 (key=%s): %v", cacheKey, err)
	}

	report := h.matcher.Match(resumeText, jdText)

	if data, jsonErr := json.Marshal(report); jsonErr == nil {
		if setErr := h.storage.Redis.SetMatchReport(ctx, cacheKey, string(data)); setErr != nil {
			h.logger.Printf("写入报告缓存失败 (key=%s): %v", cacheKey, setErr)
		}
	}

	return report
}

// persistRecord 把评分结果写入历史表
// 仅当请求携带候选人与岗位ID且MySQL可用时写入；失败只记录日志
func (h *MatchHandler) persistRecord(ctx context.Context, req MatchRequest, report types.MatchReport) {
	if h.storage == nil || h.storage.MySQL == nil {
		return
	}
	if req.CandidateID == "" || req.JobID == "" {
		return
	}

	recordUUID, err := uuid.NewV7()
	if err != nil {
		h.logger.Printf("生成记录UUID失败: %v", err)
		return
	}

	scoresJSON, _ := json.Marshal(report.Scores)
	reportJSON, _ := json.Marshal(report)

	record := &models.MatchRecord{
		RecordUUID:     recordUUID.String(),
		CandidateID:    req.CandidateID,
		JobID:          req.JobID,
		FinalScore:     report.FinalScore,
		ReadinessLevel: report.ReadinessLevel,
		Summary:        report.Summary,
		ScoresJSON:     datatypes.JSON(scoresJSON),
		ReportJSON:     datatypes.JSON(reportJSON),
		EngineVersion:  constants.EngineVersion,
	}

	if err := h.storage.MySQL.SaveMatchRecord(ctx, record); err != nil {
		h.logger.Printf("保存匹配记录失败 (Candidate=%s, Job=%s): %v", req.CandidateID, req.JobID, err)
	}
}

// recommendationsForScore 按分数区间返回固定的求职建议文案
// 区间划分与准备度等级保持一致
func recommendationsForScore(score float64) []string {
	switch {
	case score >= 85:
		return []string{
			"Apply immediately - you're a strong candidate",
			"Tailor your cover letter to highlight matching skills",
			"Prepare to discuss your relevant projects in detail",
		}
	case score >= 70:
		return []string{
			"Apply with confidence",
			"Address any missing skills in your cover letter",
			"Highlight your transferable experience",
		}
	case score >= 55:
		return []string{
			"Consider applying if you're a fast learner",
			"Take online courses for missing critical skills",
			"Build projects showcasing required technologies",
		}
	default:
		return []string{
			"Focus on building required skills first",
			"Look for junior/entry-level positions",
			"Create portfolio projects using required technologies",
		}
	}
}
