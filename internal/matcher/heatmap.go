package matcher

import (
	"sort"
	"strings"

	"ats-match-go/internal/types"
)

// 热力图各类别的固定展示参数
const (
	// HeatmapScoreRequiredMatched 命中必备技能的展示权重
	HeatmapScoreRequiredMatched = 95
	// HeatmapScorePreferredMatched 命中加分技能的展示权重
	HeatmapScorePreferredMatched = 75
	// HeatmapScorePreferredMissing 缺失加分技能的展示权重
	HeatmapScorePreferredMissing = 50
	// HeatmapScoreRequiredMissing 缺失必备技能的展示权重
	HeatmapScoreRequiredMissing = 20

	// 前端约定的类别颜色
	colorRequiredMatched  = "#10b981"
	colorPreferredMatched = "#3b82f6"
	colorPreferredMissing = "#f59e0b"
	colorRequiredMissing  = "#ef4444"

	// 加分类别与缺失必备类别的截断上限
	maxPreferredEntries       = 5
	maxMissingRequiredEntries = 8
)

// ProjectHeatmap 把匹配报告投影为前端热力图所需的扁平记录列表
// 纯展示层变换，不反馈到分数本身。输出顺序固定：
// 命中必备 → 命中加分(≤5) → 缺失加分(≤5) → 缺失必备(≤8)，
// 每个类别内部按字母序排序后再截断，技能名统一转为大写
func ProjectHeatmap(report types.MatchReport) []types.HeatmapEntry {
	entries := make([]types.HeatmapEntry, 0,
		len(report.Strengths)+2*maxPreferredEntries+maxMissingRequiredEntries)

	for _, skill := range sortedCopy(report.Strengths) {
		entries = append(entries, types.HeatmapEntry{
			Skill:   strings.ToUpper(skill),
			Type:    "required",
			Matched: true,
			Score:   HeatmapScoreRequiredMatched,
			Status:  "required_matched",
			Color:   colorRequiredMatched,
		})
	}

	for _, skill := range capped(sortedCopy(report.PreferredMatched), maxPreferredEntries) {
		entries = append(entries, types.HeatmapEntry{
			Skill:   strings.ToUpper(skill),
			Type:    "preferred",
			Matched: true,
			Score:   HeatmapScorePreferredMatched,
			Status:  "preferred_matched",
			Color:   colorPreferredMatched,
		})
	}

	for _, skill := range capped(sortedCopy(report.PreferredMissing), maxPreferredEntries) {
		entries = append(entries, types.HeatmapEntry{
			Skill:   strings.ToUpper(skill),
			Type:    "preferred",
			Matched: false,
			Score:   HeatmapScorePreferredMissing,
			Status:  "preferred_missing",
			Color:   colorPreferredMissing,
		})
	}

	for _, skill := range capped(sortedCopy(report.MissingRequired), maxMissingRequiredEntries) {
		entries = append(entries, types.HeatmapEntry{
			Skill:   strings.ToUpper(skill),
			Type:    "required",
			Matched: false,
			Score:   HeatmapScoreRequiredMissing,
			Status:  "required_missing",
			Color:   colorRequiredMissing,
		})
	}

	return entries
}

// sortedCopy 返回字母序的副本，避免修改报告中的切片
func sortedCopy(skills []string) []string {
	cp := make([]string, len(skills))
	copy(cp, skills)
	sort.Strings(cp)
	return cp
}

// capped 截断到上限
func capped(skills []string, limit int) []string {
	if len(skills) > limit {
		return skills[:limit]
	}
	return skills
}
