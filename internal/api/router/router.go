package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"ats-match-go/internal/api/handler"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, matchHandler *handler.MatchHandler) {
	api := h.Group("/api/v1")

	// 快速评分：只返回总分、等级与文案
	api.POST("/match", matchHandler.HandleCalculateMatch)

	// 完整分析：报告明细 + 技能热力图 + 建议
	api.POST("/match/analysis", matchHandler.HandleMatchAnalysis)

	// 候选人历史匹配记录
	api.GET("/match/history/:candidate_id", matchHandler.HandleMatchHistory)

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
